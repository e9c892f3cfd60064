package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinedex/models"
)

// newUpstream fakes enough of TMDB for handler tests: detail endpoints for
// movie/tv, a trending feed, and a deterministic failure for /tv/13.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 603, "title": "The Matrix"})
	})
	mux.HandleFunc("/tv/1399", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 1399, "name": "Game of Thrones"})
	})
	mux.HandleFunc("/tv/13", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"The resource you requested could not be found."}`, http.StatusNotFound)
	})
	mux.HandleFunc("/trending/all/day", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"page": 1,
			"results": []map[string]any{
				{"id": 603, "media_type": "movie", "title": "The Matrix"},
			},
			"total_pages": 3,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestMediaDetailRoute(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(t, upstream.URL)

	rec, body := doJSON(t, router, http.MethodGet, "/api/media/movie/603", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var title string
	json.Unmarshal(body["title"], &title)
	if title != "The Matrix" {
		t.Fatalf("unexpected detail payload: %s", rec.Body.String())
	}
	var mediaType string
	json.Unmarshal(body["media_type"], &mediaType)
	if mediaType != "movie" {
		t.Fatalf("expected media_type annotated, got %q", mediaType)
	}
}

func TestMediaDetailInvalidTypeIs400(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(t, upstream.URL)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/media/book/1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid media type, got %d", rec.Code)
	}
}

func TestMediaDetailForwardsUpstream4xx(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/media/tv/13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected upstream 404 forwarded, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" {
		t.Fatal("expected upstream body forwarded")
	}
}

func TestBrowseRoute(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(t, upstream.URL)

	rec, body := doJSON(t, router, http.MethodGet, "/api/media/browse", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var totalPages int
	json.Unmarshal(body["total_pages"], &totalPages)
	if totalPages != 3 {
		t.Fatalf("expected total_pages 3, got %d", totalPages)
	}
}

func TestCollectionDetailsSkipsFailedItems(t *testing.T) {
	upstream := newUpstream(t)
	router := newTestRouter(t, upstream.URL)

	doJSON(t, router, http.MethodPost, "/api/user/user-1/watchlist",
		`{"itemId": "603", "mediaType": "movie"}`)
	doJSON(t, router, http.MethodPost, "/api/user/user-1/watchlist",
		`{"itemId": "13", "mediaType": "tv"}`)
	doJSON(t, router, http.MethodPost, "/api/user/user-1/watchlist",
		`{"itemId": "1399", "mediaType": "tv"}`)

	rec, body := doJSON(t, router, http.MethodGet, "/api/user/user-1/watchlist/details", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite one broken item, got %d", rec.Code)
	}
	var results []models.MediaDetail
	if err := json.Unmarshal(body["results"], &results); err != nil {
		t.Fatalf("failed to decode results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected the broken item dropped leaving 2 details, got %d", len(results))
	}
}

func TestCatalogRoute(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, body := doJSON(t, router, http.MethodGet, "/api/catalog?query=naruto", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var results []models.CatalogEntry
	if err := json.Unmarshal(body["results"], &results); err != nil {
		t.Fatalf("failed to decode results: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Naruto" {
		t.Fatalf("expected exactly Naruto, got %v", results)
	}
}
