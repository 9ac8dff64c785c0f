package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/df07/go-raycast/pkg/query"
)

// maxBodyBytes bounds the size of a query document posted to /api/cast
const maxBodyBytes = 1 << 20

// Server handles web requests for the ray-cast service
type Server struct {
	port       int
	numWorkers int
	requests   atomic.Int64
}

// NewServer creates a new web server; numWorkers <= 0 uses one worker per CPU
func NewServer(port, numWorkers int) *Server {
	return &Server{port: port, numWorkers: numWorkers}
}

// CastResponse is the body returned by a successful cast request
type CastResponse struct {
	RequestID string           `json:"requestId"`
	Report    *query.Report    `json:"report"`
	Console   []ConsoleMessage `json:"console"`
}

// Handler returns the routes served by the web server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cast", s.handleCast)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCast runs the query document in the request body and returns the report
func (s *Server) handleCast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "cast requires POST")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("query document exceeds %d bytes", maxBodyBytes))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err))
		return
	}

	doc, err := query.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q, err := query.Compile(doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := fmt.Sprintf("cast-%d", s.requests.Add(1))
	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	runner := query.NewRunner(s.numWorkers, NewWebLogger(requestID, consoleChan))

	// Use request context to detect client disconnection
	report, err := runner.Run(r.Context(), q)
	close(consoleChan)
	if err != nil {
		log.Printf("Cast %s aborted: %v", requestID, err)
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("cast aborted: %v", err))
		return
	}

	console := make([]ConsoleMessage, 0, len(consoleChan))
	for msg := range consoleChan {
		console = append(console, msg)
	}

	writeJSON(w, http.StatusOK, CastResponse{
		RequestID: requestID,
		Report:    report,
		Console:   console,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
