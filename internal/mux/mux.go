package mux

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"katas-server/internal/config"
	"katas-server/internal/metrics"
	"katas-server/internal/rng"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

// requestIDHeader is echoed back on every response
const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	options options
	version string
	metrics *metrics.Recorder
	dealer  rng.Generator
}

type options struct {
	// defaultWrapColumns is used when a wrap request does not specify columns
	defaultWrapColumns int
	// maxZigZagSize caps the dimension of a generated zigzag matrix
	maxZigZagSize int
	// metricsPath is where metrics are served; empty disables the endpoint
	metricsPath string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		metrics: metrics.NewRecorder(),
		dealer:  rng.Crypto{},
		options: options{
			defaultWrapColumns: cfg.Wrap.DefaultColumns,
			maxZigZagSize:      cfg.ZigZag.MaxSize,
		},
	}

	if cfg.Metrics.Enabled {
		this.options.metricsPath = cfg.Metrics.Path
	}

	this.Router.Use(this.requestIDMiddleware, this.metricsMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

		if this.options.metricsPath != "" {
			r.Methods(http.MethodGet).Path(this.options.metricsPath).Handler(this.metrics.Handler())
		}
	}

	// poker
	{
		r := this.Router.PathPrefix("/poker").Subrouter()
		r.Methods(http.MethodPost).Path("/rank").Handler(this.postPokerRank())
		r.Methods(http.MethodPost).Path("/compare").Handler(this.postPokerCompare())
		r.Methods(http.MethodGet).Path("/deal").Handler(this.getPokerDeal())
	}

	// the remaining katas
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/compass").Handler(this.getCompass())
		r.Methods(http.MethodPost).Path("/braces").Handler(this.postBraces())
		r.Methods(http.MethodGet).Path("/zigzag/{n:[0-9]+}").Handler(this.getZigZag())
		r.Methods(http.MethodPost).Path("/dominoes").Handler(this.postDominoes())
		r.Methods(http.MethodPost).Path("/ranges").Handler(this.postRanges())
		r.Methods(http.MethodPost).Path("/bank-account").Handler(this.postBankAccount())
		r.Methods(http.MethodPost).Path("/wrap").Handler(this.postWrap())
		r.Methods(http.MethodPost).Path("/rectangles").Handler(this.postRectangles())
	}

	return this
}

func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(statusCode int) {
	s.statusCode = statusCode
	s.ResponseWriter.WriteHeader(statusCode)
}

func (m *Mux) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := gmux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.metrics.ObserveRequest(route, rec.statusCode, time.Since(start))
	})
}

// logger returns a log entry tagged with the request ID
func logger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}
