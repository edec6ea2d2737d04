// Package service exposes reconstruction over HTTP
package service

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shaih/go-polyrecon/casefile"
	"github.com/shaih/go-polyrecon/primitives/linalg"
	"github.com/shaih/go-polyrecon/primitives/radix"
	"github.com/shaih/go-polyrecon/primitives/shamir"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxBodySize bounds the size of a request body
	MaxBodySize = 1 << 20

	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

// Server answers reconstruction requests.
// Requests are independent and may be served concurrently.
type Server struct {
	opts   shamir.Options
	router *mux.Router
}

// New returns a server reconstructing with opts
func New(opts shamir.Options) *Server {
	s := &Server{opts: opts}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/reconstruct", s.handleReconstruct).Methods(http.MethodPost)
	r.Use(logRequests)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Handler:      s,
		Addr:         addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

// formatOf returns the format of the request body, msgpack or JSON
func formatOf(r *http.Request) casefile.Format {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == contentTypeMsgpack {
		return casefile.FormatMsgpack
	}
	return casefile.FormatJSON
}

func (s *Server) handleReconstruct(w http.ResponseWriter, r *http.Request) {
	format := formatOf(r)
	name := r.URL.Query().Get("name")

	tc, err := casefile.Decode(http.MaxBytesReader(w, r.Body, MaxBodySize), format)
	if err != nil {
		s.writeReport(w, format, http.StatusBadRequest, casefile.NewReport(name, nil, nil, err))
		return
	}

	rec, v, err := shamir.Process(tc, s.opts)
	s.writeReport(w, format, statusOf(err), casefile.NewReport(name, rec, v, err))
}

// statusOf maps processing errors to HTTP statuses
func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, linalg.ErrSingular), errors.Is(err, shamir.ErrRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, linalg.ErrDimension),
		errors.Is(err, radix.ErrBase),
		errors.Is(err, radix.ErrMalformedDigit),
		errors.Is(err, casefile.ErrMalformed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeReport(w http.ResponseWriter, format casefile.Format, status int, report *casefile.Report) {
	var buf bytes.Buffer
	if err := casefile.EncodeReport(&buf, report, format); err != nil {
		log.Errorf("cannot encode report: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	contentType := contentTypeJSON
	if format == casefile.FormatMsgpack {
		contentType = contentTypeMsgpack
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
