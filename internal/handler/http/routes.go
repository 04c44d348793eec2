package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/updateSettings", h.updateSettings)
	router.Get("/getSettings", h.getSettings)

	router.Post("/updateContacts", h.updateContacts)
	router.Get("/getContacts", h.getContacts)

	router.Get("/version", h.getServerVersion)

	if h.files.ServeStatic && h.files.PublicPrefix != "" {
		prefix := strings.TrimRight(h.files.PublicPrefix, "/")
		router.Get(prefix+"/*", h.serveContracts(prefix))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// serveContracts serves committed contract documents. Directory listings
// are not exposed.
func (h *Handler) serveContracts(prefix string) http.HandlerFunc {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(h.files.ContractsDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
