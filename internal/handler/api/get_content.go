package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/usecase/content"
)

func GetContentHandler(renderer port.HTTPRenderer, svc port.ContentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetContent(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Content not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get content details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached content #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for content #%s", id)
	}
}
