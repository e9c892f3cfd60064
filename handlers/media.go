package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cinedex/models"
	"cinedex/services/metadata"

	"github.com/gorilla/mux"
)

type mediaClient interface {
	Detail(ctx context.Context, mediaType, id string) (*models.MediaDetail, error)
	Browse(ctx context.Context, query string, page int) (*models.BrowsePage, error)
}

var _ mediaClient = (*metadata.Client)(nil)

type hydrator interface {
	Hydrate(ctx context.Context, items []models.CollectionItem) []models.MediaDetail
}

var _ hydrator = (*metadata.Hydrator)(nil)

// MediaHandler proxies detail and browse lookups to the metadata upstream
// and expands stored collections into full details.
type MediaHandler struct {
	Client      mediaClient
	Hydrator    hydrator
	Collections collectionService
}

func NewMediaHandler(client mediaClient, hydrator hydrator, collections collectionService) *MediaHandler {
	return &MediaHandler{Client: client, Hydrator: hydrator, Collections: collections}
}

// Browse serves the trending feed (no query) or a multi-type search.
func (h *MediaHandler) Browse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	result, err := h.Client.Browse(r.Context(), query, page)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Detail serves a single movie or series lookup.
func (h *MediaHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := vars["mediaType"]
	id := vars["id"]

	if !models.IsValidMediaType(mediaType) {
		writeError(w, http.StatusBadRequest, "Invalid media type. Must be 'movie' or 'tv'.")
		return
	}

	detail, err := h.Client.Detail(r.Context(), mediaType, id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// CollectionDetails expands one of the owner's collections into full media
// details. Items whose fetch fails are dropped, never the whole batch.
func (h *MediaHandler) CollectionDetails(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(mux.Vars(r)["ownerID"])
	if ownerID == "" {
		writeError(w, http.StatusBadRequest, "owner id is required")
		return
	}
	list := mux.Vars(r)["list"]

	out, err := h.Collections.Lists(ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	items := out.Favorites
	if list == models.ListWatchlist {
		items = out.Watchlist
	}

	details := h.Hydrator.Hydrate(r.Context(), items)
	writeJSON(w, http.StatusOK, map[string]any{"results": details})
}

// writeUpstreamError maps metadata client failures onto responses: 4xx
// from the upstream is forwarded verbatim, exhausted retries become a
// generic 502, anything else is a 500.
func writeUpstreamError(w http.ResponseWriter, err error) {
	if status, body, ok := metadata.ClientErrorStatus(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
		return
	}
	if errors.Is(err, metadata.ErrRetriesExhausted) {
		writeError(w, http.StatusBadGateway, "Metadata service unavailable. Please try again later.")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
