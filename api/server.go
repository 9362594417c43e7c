// Package api - thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine orchestration and
// output serialization. It never performs cost logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"payment-cost/core/curve"
	"payment-cost/core/engine"
	"payment-cost/core/output"
	"payment-cost/core/policy"
	"payment-cost/core/rates"
	"payment-cost/internal/errors"
	"payment-cost/internal/logging"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	table   *rates.Table
}

// NewServer creates a new API server. The table is the server-wide rate
// schedule; per-request overrides are layered on top of it.
func NewServer(version string, table *rates.Table) *Server {
	if table == nil {
		table = rates.Default()
	}

	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
		table:   table,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /curve", s.handleCurve)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /rates", s.handleRates)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	table := s.table.Apply(req.Rates)

	flags := policy.DeriveFlags(req.Profile)
	if req.Flags != nil {
		flags = req.Flags.Normalize()
	}

	direct, err := engine.EvaluateDirect(req.Profile, flags, req.Options, table)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	mor, err := engine.EvaluateMoR(req.Profile, table)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	result := struct {
		*output.ComparisonResult
		Metadata *ResponseMetadata `json:"metadata"`
	}{
		ComparisonResult: output.NewComparison(req.Profile, flags, direct, mor, table.Assumptions.USDToGBPRate),
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}

	logging.Debug("estimate served",
		zap.Int64("volume", req.Profile.MonthlyVolume),
		zap.String("hash", result.Metadata.InputHash))
	s.writeJSON(w, result, http.StatusOK)
}

// handleCurve handles POST /curve
func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CurveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	table := s.table.Apply(req.Rates)

	params := curve.Params{
		Options:                req.Options,
		EuropeanSharePct:       req.EuropeanSharePct,
		USSharePct:             req.USSharePct,
		SubscriptionSharePct:   req.SubscriptionSharePct,
		SubscriptionUnitAmount: req.SubscriptionUnitAmount,
		MaxTurnover:            req.MaxTurnover,
		UnitAmount:             req.UnitAmount,
		Steps:                  req.Steps,
		DeriveFlags:            req.Flags == nil,
	}
	if req.Flags != nil {
		params.Flags = req.Flags.Normalize()
	}

	points, err := curve.Sweep(params, table)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	resp := CurveResponse{
		Points: points,
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}
	if breakEven, ok := curve.BreakEven(points); ok {
		resp.BreakEven = &breakEven
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "payment-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleRates handles GET /rates: the effective server-wide rate table
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.table, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if errors.IsType(err, errors.TypeInput) {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
