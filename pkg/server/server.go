package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/cache"
	"github.com/matzehuels/scifig/pkg/errors"
	scio "github.com/matzehuels/scifig/pkg/io"
	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/observability"
	"github.com/matzehuels/scifig/pkg/render"
)

// DefaultJournal is audited against when a request names none.
const DefaultJournal = "nature"

// maxBody bounds request bodies.
const maxBody = 4 << 20

// Server serves the audit API.
type Server struct {
	registry *journal.Registry
	cache    cache.Cache
	keyer    cache.Keyer
}

// New returns a server resolving journals in reg and caching reports in c.
// A nil reg means [journal.Default]; a nil c disables caching.
func New(reg *journal.Registry, c cache.Cache) *Server {
	if reg == nil {
		reg = journal.Default
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{
		registry: reg,
		cache:    cache.Instrument(c, "audit"),
		keyer:    cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:"),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/journals", s.listJournals)
	r.Get("/journals/{name}", s.getJournal)
	r.Post("/audit/code", s.auditCode)
	r.Post("/audit/figure", s.auditFigure)
	r.Post("/render", s.renderFigure)
	return r
}

// Serve listens on addr until ctx is cancelled. Request contexts derive
// from ctx, so values attached to it reach the HTTP hooks.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) listJournals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Specs())
}

func (s *Server) getJournal(w http.ResponseWriter, r *http.Request) {
	spec, err := s.registry.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) auditCode(w http.ResponseWriter, r *http.Request) {
	spec, body, ok := s.prepare(w, r)
	if !ok {
		return
	}
	key := s.keyer.CodeAuditKey(spec.Fingerprint(), string(body))
	s.cachedReport(w, r, key, func() *audit.Report {
		a := audit.NewCodeAuditor(spec, auditOptions(r)...)
		a.Audit(string(body))
		return a.Result("")
	})
}

func (s *Server) auditFigure(w http.ResponseWriter, r *http.Request) {
	spec, body, ok := s.prepare(w, r)
	if !ok {
		return
	}
	fig, err := scio.ReadFigure(bytes.NewReader(body))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid figure"))
		return
	}
	key := s.keyer.FigureAuditKey(spec.Fingerprint(), body)
	s.cachedReport(w, r, key, func() *audit.Report {
		a := audit.NewFigureAuditor(spec, auditOptions(r)...)
		a.Audit(fig)
		return a.Result("")
	})
}

func (s *Server) renderFigure(w http.ResponseWriter, r *http.Request) {
	spec, body, ok := s.prepare(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	fig, err := scio.ReadFigure(bytes.NewReader(body))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid figure"))
		return
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, fig, format, spec.DPI); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	_, _ = w.Write(buf.Bytes())
}

// prepare resolves the journal and reads the body, writing the error
// response itself when either fails.
func (s *Server) prepare(w http.ResponseWriter, r *http.Request) (*journal.Spec, []byte, bool) {
	name := r.URL.Query().Get("journal")
	if name == "" {
		name = DefaultJournal
	}
	spec, err := s.registry.Get(name)
	if err != nil {
		writeError(w, err)
		return nil, nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return nil, nil, false
	}
	return spec, body, true
}

func (s *Server) cachedReport(w http.ResponseWriter, r *http.Request, key string, run func() *audit.Report) {
	ctx := r.Context()
	strict := isStrict(r)
	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		if rep, err := scio.ReadReport(bytes.NewReader(data)); err == nil {
			rep.Strict = strict
			writeReport(w, rep)
			return
		}
	}

	rep := run()
	var buf bytes.Buffer
	if err := scio.WriteReport(rep, &buf); err == nil {
		_ = s.cache.Set(ctx, key, buf.Bytes(), cache.AuditTTL)
	}
	writeReport(w, rep)
}

func writeReport(w http.ResponseWriter, rep *audit.Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = scio.WriteReport(rep, w)
}

func auditOptions(r *http.Request) []audit.Option {
	if isStrict(r) {
		return []audit.Option{audit.Strict()}
	}
	return nil
}

func isStrict(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var statusByCode = map[errors.Code]int{
	errors.ErrCodeJournalNotFound: http.StatusNotFound,
	errors.ErrCodeNotFound:        http.StatusNotFound,
	errors.ErrCodeFileNotFound:    http.StatusNotFound,
	errors.ErrCodeInvalidInput:    http.StatusBadRequest,
	errors.ErrCodeInvalidFormat:   http.StatusBadRequest,
	errors.ErrCodeInvalidPath:     http.StatusBadRequest,
	errors.ErrCodeUnsupported:     http.StatusNotImplemented,
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"code": string(code), "error": errors.UserMessage(err)})
}

// instrument reports requests and responses to the registered HTTP hooks.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
