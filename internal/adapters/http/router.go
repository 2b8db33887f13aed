package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/malhotra-vikas/earnings-press-service/internal/config"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
	"github.com/malhotra-vikas/earnings-press-service/internal/core/ports"
	"github.com/malhotra-vikas/earnings-press-service/internal/observability/metrics"
)

type Router struct {
	cfg       config.Config
	templates ports.TemplateExtractor
	releases  ports.ReleaseGenerator
	metrics   *metrics.HTTPServerMetrics
	logger    *slog.Logger
}

func NewRouter(
	cfg config.Config,
	templates ports.TemplateExtractor,
	releases ports.ReleaseGenerator,
	m *metrics.HTTPServerMetrics,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		cfg:       cfg,
		templates: templates,
		releases:  releases,
		metrics:   m,
		logger:    logger,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/sections", rt.extractSections)
	mux.HandleFunc("/v1/press-release", rt.generateRelease)
	mux.Handle("/metrics", rt.metrics.Handler())

	handler := accessLogMiddleware(rt.logger)(mux)
	handler = rt.metrics.Middleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractSections derives a section template from an uploaded sample press
// release. Multipart field: "pdf".
func (rt *Router) extractSections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, int64(rt.cfg.MaxUploadBytes))

	doc, ok := rt.readUpload(w, r, "pdf")
	if !ok {
		rt.metrics.ObserveStage(metrics.StageExtractTemplate, "rejected")
		return
	}
	rt.metrics.ObserveUpload(metrics.StageExtractTemplate, len(doc.Data))

	template, err := rt.templates.ExtractTemplate(r.Context(), doc)
	if err != nil {
		rt.failStage(w, r, metrics.StageExtractTemplate, err)
		return
	}

	rt.metrics.ObserveStage(metrics.StageExtractTemplate, "ok")
	writeJSON(w, http.StatusOK, map[string]any{"sections": template})
}

// generateRelease produces a press release from an uploaded 10-Q filing and
// a serialized section template. Multipart fields: "tenq" and "sections".
func (rt *Router) generateRelease(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, int64(rt.cfg.MaxUploadBytes))

	doc, ok := rt.readUpload(w, r, "tenq")
	if !ok {
		rt.metrics.ObserveStage(metrics.StageGenerateRelease, "rejected")
		return
	}

	rawSections := r.FormValue("sections")
	if rawSections == "" {
		rt.metrics.ObserveStage(metrics.StageGenerateRelease, "rejected")
		writeError(w, http.StatusBadRequest, "multipart field 'sections' is required")
		return
	}
	template, err := domain.ParseSectionTemplate([]byte(rawSections))
	if err != nil {
		rt.metrics.ObserveStage(metrics.StageGenerateRelease, "rejected")
		writeError(w, http.StatusBadRequest, "field 'sections' must be a JSON array of {title, description}")
		return
	}
	rt.metrics.ObserveUpload(metrics.StageGenerateRelease, len(doc.Data))

	release, err := rt.releases.GenerateRelease(r.Context(), doc, template)
	if err != nil {
		rt.failStage(w, r, metrics.StageGenerateRelease, err)
		return
	}

	rt.metrics.ObserveStage(metrics.StageGenerateRelease, "ok")
	writeJSON(w, http.StatusOK, map[string]string{"pressRelease": release})
}

// readUpload pulls one multipart file field into memory. The document only
// lives for this request.
func (rt *Router) readUpload(w http.ResponseWriter, r *http.Request, field string) (*domain.UploadedDocument, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field '"+field+"' is required")
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return nil, false
	}

	return &domain.UploadedDocument{
		Filename:  header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Data:      data,
	}, true
}

func (rt *Router) failStage(w http.ResponseWriter, r *http.Request, stage string, err error) {
	status := mapErrorToHTTPStatus(err)
	outcome := "server_error"
	if status < 500 {
		outcome = "client_error"
	}
	rt.metrics.ObserveStage(stage, outcome)

	rt.logger.Error("pipeline.stage_failed",
		"request_id", requestIDFromContext(r.Context()),
		"stage", stage,
		"status", status,
		"error", err,
	)
	writeError(w, status, publicErrorMessage(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
