package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cinedex/models"
	"cinedex/services/collections"

	"github.com/gorilla/mux"
)

type collectionService interface {
	Add(ownerID, list string, item models.CollectionItem) ([]models.CollectionItem, error)
	Remove(ownerID, list string, item models.CollectionItem) ([]models.CollectionItem, error)
	Lists(ownerID string) (models.UserCollections, error)
}

var _ collectionService = (*collections.Service)(nil)

// CollectionsHandler serves the per-user favorites/watchlist routes. The
// owner id comes from the URL and is treated as an opaque key supplied by
// the identity layer.
type CollectionsHandler struct {
	Service collectionService
}

func NewCollectionsHandler(service collectionService) *CollectionsHandler {
	return &CollectionsHandler{Service: service}
}

// Get returns both collections; unknown owners read as empty arrays.
func (h *CollectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	out, err := h.Service.Lists(ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// Add inserts an item into the list named in the URL. Duplicates are
// silently absorbed and the updated set is returned either way.
func (h *CollectionsHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.requireOwner(w, r)
	if !ok {
		return
	}
	list := mux.Vars(r)["list"]

	// Extra body fields are tolerated; only itemId and mediaType matter.
	var body models.CollectionUpsert
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := models.CollectionItem{
		ID:        collections.CoerceItemID(body.ItemID),
		MediaType: body.MediaType,
	}
	if item.ID == "" || item.MediaType == "" {
		writeError(w, http.StatusBadRequest, "itemId and mediaType are required in the request body.")
		return
	}

	items, err := h.Service.Add(ownerID, list, item)
	if err != nil {
		writeError(w, collectionErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item added to " + list,
		list:      items,
	})
}

// Remove deletes an item named by the mediaId/mediaType query params.
// Removing something the owner never added is a no-op; an owner with no
// record at all is a 404.
func (h *CollectionsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.requireOwner(w, r)
	if !ok {
		return
	}
	list := mux.Vars(r)["list"]

	mediaID := strings.TrimSpace(r.URL.Query().Get("mediaId"))
	mediaType := strings.TrimSpace(r.URL.Query().Get("mediaType"))
	if mediaID == "" || mediaType == "" {
		writeError(w, http.StatusBadRequest, "mediaId and mediaType are required query parameters.")
		return
	}

	items, err := h.Service.Remove(ownerID, list, models.CollectionItem{ID: mediaID, MediaType: mediaType})
	if err != nil {
		if errors.Is(err, collections.ErrOwnerNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		writeError(w, collectionErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item removed from " + list,
		list:      items,
	})
}

func (h *CollectionsHandler) Options(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *CollectionsHandler) requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID := strings.TrimSpace(mux.Vars(r)["ownerID"])
	if ownerID == "" {
		writeError(w, http.StatusBadRequest, "owner id is required")
		return "", false
	}
	return ownerID, true
}

func collectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, collections.ErrOwnerIDRequired),
		errors.Is(err, collections.ErrMediaIDRequired),
		errors.Is(err, collections.ErrInvalidMediaType),
		errors.Is(err, collections.ErrInvalidList):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
