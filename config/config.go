// Package config describes the target environment that the harness
// validates: where the service's API is listening and how to reach the
// deployed CLI binary.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in defaults point at the appliance as it is named on the lab
// network. A config file or command line flags select any other target.
const (
	DefaultBaseURL      = "http://PacketParamedic.alpina:8080/api/v1"
	DefaultSSHHost      = "alfa@PacketParamedic.alpina"
	DefaultRemoteBinary = "./PacketParamedic/target/release/packetparamedic"
)

// Config identifies the deployment under validation.
type Config struct {
	API APIConfig `yaml:"api"`
	SSH SSHConfig `yaml:"ssh"`
}

// APIConfig locates the service's HTTP API.
type APIConfig struct {
	// BaseURL is the prefix under which all API routes live, including the
	// version segment.
	BaseURL string `yaml:"baseUrl"`
}

// SSHConfig locates the deployed CLI binary for the remote CLI check.
type SSHConfig struct {
	// Host is the ssh destination, in user@host form.
	Host string `yaml:"host"`
	// Binary is the path of the CLI binary on the target host.
	Binary string `yaml:"binary"`
}

// Default returns the built-in target environment.
func Default() Config {
	return Config{
		API: APIConfig{BaseURL: DefaultBaseURL},
		SSH: SSHConfig{Host: DefaultSSHHost, Binary: DefaultRemoteBinary},
	}
}

// LoadFile reads a YAML config file on top of the defaults, so a file only
// needs to name the properties it changes.
func LoadFile(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return c, nil
}

// Validate returns the first problem that would keep the harness from
// addressing the target.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.baseUrl is required")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.baseUrl: %w", err)
	}
	if c.SSH.Host == "" {
		return errors.New("ssh.host is required")
	}
	if c.SSH.Binary == "" {
		return errors.New("ssh.binary is required")
	}
	return nil
}
