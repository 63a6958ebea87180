package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/pidigits/chudnovsky"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// Route names used as the metrics "route" label.
const (
	routeDigits  = "pidigits"
	routeHealthz = "healthz"
)

// errorBody is the JSON shape of every non-200 response.
type errorBody struct {
	Detail string `json:"detail"`
}

// healthBody is the JSON shape of /healthz.
type healthBody struct {
	Status string `json:"status"`
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /pidigits/", s.instrument(routeDigits, s.handleDigits))
	mux.Handle("GET /healthz", s.instrument(routeHealthz, s.handleHealthz))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return mux
}

// handleDigits serves GET /pidigits/?digits=N[&limit=L].
// The body is pi cut to limit+2 characters when limit is given, otherwise digits+2.
func (s *Service) handleDigits(w http.ResponseWriter, r *http.Request) (int, []zap.Field) {
	q := r.URL.Query()

	digits, err := parseCount(q.Get("digits"), true, false)
	if err != nil {
		return writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "digits: " + err.Error()}), nil
	}
	limit, err := parseCount(q.Get("limit"), false, true)
	if err != nil {
		return writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "limit: " + err.Error()}), nil
	}
	fields := []zap.Field{zap.Uint32("digits", digits), zap.Uint32("limit", limit)}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	pi, err := s.Digits(ctx, digits)
	switch {
	case err == nil:
	case errors.Is(err, chudnovsky.ErrInvalidArgument), errors.Is(err, ErrDigitsLimit):
		return writeJSON(w, http.StatusBadRequest, errorBody{Detail: err.Error()}), append(fields, zap.Error(err))
	case errors.Is(err, ErrUnavailable):
		return writeJSON(w, http.StatusServiceUnavailable, errorBody{Detail: err.Error()}), append(fields, zap.Error(err))
	default:
		return writeJSON(w, http.StatusInternalServerError, errorBody{Detail: err.Error()}), append(fields, zap.Error(err))
	}

	n := int(digits) + 2
	if limit > 0 {
		n = int(limit) + 2
	}
	if n < len(pi) {
		pi = pi[:n]
	}

	return writeJSON(w, http.StatusOK, pi), fields
}

// handleHealthz serves GET /healthz.
func (s *Service) handleHealthz(w http.ResponseWriter, _ *http.Request) (int, []zap.Field) {
	return writeJSON(w, http.StatusOK, healthBody{Status: "ok"}), nil
}

// parseCount parses a digit-count query value in [0, MaxDigits].
// An absent value is an error when required, and 0 otherwise.
// With positive set, 0 is rejected.
func parseCount(raw string, required, positive bool) (uint32, error) {
	if raw == "" {
		if required {
			return 0, errors.New("field required")
		}
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a non-negative integer: %q", raw)
	}
	if v > chudnovsky.MaxDigits {
		return 0, fmt.Errorf("must be at most %d", uint32(chudnovsky.MaxDigits))
	}
	if positive && v == 0 {
		return 0, errors.New("must be greater than 0")
	}
	return uint32(v), nil
}

// routeHandler writes a response and returns its status plus extra log fields.
type routeHandler func(http.ResponseWriter, *http.Request) (int, []zap.Field)

// instrument assigns a request ID, then logs and counts every response.
func (s *Service) instrument(route string, h routeHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		code, fields := h(w, r)

		s.metrics.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		fields = append(fields,
			zap.String("request_id", id),
			zap.String("route", route),
			zap.Int("status", code),
			zap.Duration("elapsed", time.Since(start)),
		)
		if code >= http.StatusInternalServerError {
			s.logger.Error("request", fields...)
			return
		}
		s.logger.Info("request", fields...)
	})
}

// writeJSON encodes body with the given status and returns the status.
func writeJSON(w http.ResponseWriter, code int, body interface{}) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)

	return code
}
