package http

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/3-lines-studio/techpage/internal/core"
	"github.com/3-lines-studio/techpage/internal/usecase"
	"go.uber.org/zap"
)

const cacheControl = "public, max-age=3600"

type PageHandler struct {
	service *usecase.PageService
	route   usecase.PageRoute
	isDev   bool
	logger  *zap.Logger
}

func NewPageHandler(service *usecase.PageService, route usecase.PageRoute, isDev bool, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		service: service,
		route:   route,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{Route: h.route})
	if output.Error != nil {
		h.logger.Error("render failed", zap.String("route", h.route.Path), zap.Error(output.Error))
		h.serveError(w, output.Error)
		return
	}

	page := output.Page
	w.Header().Set("ETag", page.ETag)
	w.Header().Set("Cache-Control", cacheControl)

	if etagMatches(req.Header.Get("If-None-Match"), page.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page.HTML)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
