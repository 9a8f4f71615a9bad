// Package mockservice provides an in-memory implementation of the service's
// HTTP API, so the harness can be tested without a deployed appliance.
//
// The behavior mirrors the real API surface: success responses are JSON
// envelopes with a "data" property and usually a "meta" property, error
// responses are {"error": ...}, creating a schedule answers 201, and
// deleting an unknown schedule answers 404.
package mockservice

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/packetparamedic/deployment-validator/framework"
)

// Service is an http.Handler implementing the service API.
type Service struct {
	version      string
	healthStatus string
	selfTest     interface{}
	schedules    map[string]Schedule
	handler      http.Handler
	debugLogger  framework.Logger
	lock         sync.RWMutex
}

// Schedule is the service's schedule resource representation.
type Schedule struct {
	Name    string `json:"name"`
	Cron    string `json:"cron"`
	Test    string `json:"test"`
	Enabled bool   `json:"enabled"`
}

// New creates a Service that reports the given version and a health status
// of "ok". Requests are logged to debugLogger.
func New(version string, debugLogger framework.Logger) *Service {
	s := &Service{
		version:      version,
		healthStatus: "ok",
		schedules:    make(map[string]Schedule),
		debugLogger:  debugLogger,
	}
	router := mux.NewRouter()
	router.HandleFunc("/health", s.serveHealth).Methods("GET")
	router.HandleFunc("/network/interfaces", s.serveNetworkInterfaces).Methods("GET")
	router.HandleFunc("/self-test/latest", s.serveSelfTestLatest).Methods("GET")
	router.HandleFunc("/incidents", s.serveIncidents).Methods("GET")
	router.HandleFunc("/probes/status", s.serveProbeStatus).Methods("GET")
	router.HandleFunc("/speed-test/latest", s.serveSpeedTestLatest).Methods("GET")
	router.HandleFunc("/speed-test/history", s.serveSpeedTestHistory).Methods("GET")
	router.HandleFunc("/schedules", s.serveListSchedules).Methods("GET")
	router.HandleFunc("/schedules", s.serveCreateSchedule).Methods("POST")
	router.HandleFunc("/schedules/dry-run", s.serveScheduleDryRun).Methods("GET")
	router.HandleFunc("/schedules/{name}", s.serveDeleteSchedule).Methods("DELETE")
	s.handler = router
	return s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("mock service: %s %s", r.Method, r.URL)
	s.handler.ServeHTTP(w, r)
}

// SetHealthStatus changes the status string the health resource reports.
func (s *Service) SetHealthStatus(status string) {
	s.lock.Lock()
	s.healthStatus = status
	s.lock.Unlock()
}

// SetSelfTestResult sets the stored self-test result the service reports;
// nil means none has run.
func (s *Service) SetSelfTestResult(result interface{}) {
	s.lock.Lock()
	s.selfTest = result
	s.lock.Unlock()
}

// ScheduleNames returns the names of the currently stored schedules, sorted.
func (s *Service) ScheduleNames() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	names := make([]string, 0, len(s.schedules))
	for name := range s.schedules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) serveHealth(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	status := s.healthStatus
	s.lock.RUnlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{"status": status, "version": s.version},
		"meta": map[string]interface{}{"version": s.version},
	})
}

func (s *Service) serveNetworkInterfaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{
				"name":      "eth0",
				"up":        true,
				"addresses": []string{"192.168.1.10/24"},
			},
		},
	})
}

func (s *Service) serveSelfTestLatest(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	result := s.selfTest
	s.lock.RUnlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"meta": map[string]interface{}{"message": "latest self-test result"},
	})
}

func (s *Service) serveIncidents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": []interface{}{},
		"meta": map[string]interface{}{"total": 0},
	})
}

func (s *Service) serveProbeStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{"probes": []interface{}{}},
	})
}

func (s *Service) serveSpeedTestLatest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": nil,
		"meta": map[string]interface{}{"message": "no speed test results yet"},
	})
}

func (s *Service) serveSpeedTestHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": []interface{}{},
		"meta": map[string]interface{}{"total": 0},
	})
}

func (s *Service) serveListSchedules(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	list := make([]Schedule, 0, len(s.schedules))
	for _, sched := range s.schedules {
		list = append(list, sched)
	}
	s.lock.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": list,
		"meta": map[string]interface{}{"total": len(list)},
	})
}

func (s *Service) serveCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var sched Schedule
	if err := json.NewDecoder(r.Body).Decode(&sched); err != nil || sched.Name == "" || sched.Cron == "" {
		writeError(w, http.StatusBadRequest, "malformed schedule")
		return
	}
	s.lock.Lock()
	_, exists := s.schedules[sched.Name]
	if !exists {
		sched.Enabled = true
		s.schedules[sched.Name] = sched
	}
	s.lock.Unlock()
	if exists {
		writeError(w, http.StatusBadRequest, "schedule already exists")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": map[string]interface{}{"message": "schedule created"},
	})
}

func (s *Service) serveDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s.lock.Lock()
	_, ok := s.schedules[name]
	delete(s.schedules, name)
	s.lock.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "schedule not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{"message": "schedule deleted"},
	})
}

func (s *Service) serveScheduleDryRun(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil || hours <= 0 {
		writeError(w, http.StatusBadRequest, "missing or invalid hours parameter")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"window_hours": hours,
			"upcoming":     []interface{}{},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}
