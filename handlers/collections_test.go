package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"cinedex/handlers"
	"cinedex/internal/database"
	"cinedex/internal/limiter"
	"cinedex/models"
	"cinedex/services/catalog"
	"cinedex/services/collections"
	"cinedex/services/metadata"
)

func newTestRouter(t *testing.T, tmdbURL string) *mux.Router {
	t.Helper()
	db, err := database.NewDB(database.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	collectionsSvc := collections.NewService(db.Collections)
	client := metadata.NewClient(metadata.ClientConfig{
		APIKey:        "test-key",
		BaseURL:       tmdbURL,
		Limiter:       limiter.New(4),
		RetryAttempts: 1,
	})

	r := mux.NewRouter()
	handlers.RegisterRoutes(r,
		handlers.NewCollectionsHandler(collectionsSvc),
		handlers.NewMediaHandler(client, metadata.NewHydrator(client, 4), collectionsSvc),
		handlers.NewCatalogHandler(catalog.NewService()),
	)
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, target, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	decoded := make(map[string]json.RawMessage)
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func decodeItems(t *testing.T, raw json.RawMessage) []models.CollectionItem {
	t.Helper()
	var items []models.CollectionItem
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("failed to decode item list: %v", err)
	}
	return items
}

func TestGetUnknownOwnerReturnsEmptyCollections(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, body := doJSON(t, router, http.MethodGet, "/api/user/ghost", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown owner, got %d", rec.Code)
	}
	if items := decodeItems(t, body["favorites"]); len(items) != 0 {
		t.Fatalf("expected empty favorites array, got %v", items)
	}
	if items := decodeItems(t, body["watchlist"]); len(items) != 0 {
		t.Fatalf("expected empty watchlist array, got %v", items)
	}
}

func TestAddToFavorites(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, body := doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "603", "mediaType": "movie"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	items := decodeItems(t, body["favorites"])
	if len(items) != 1 || items[0].ID != "603" || items[0].MediaType != "movie" {
		t.Fatalf("unexpected favorites after add: %v", items)
	}

	// Adding the same item again yields the same set, no error.
	rec, body = doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "603", "mediaType": "movie"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected duplicate add to succeed, got %d", rec.Code)
	}
	if items := decodeItems(t, body["favorites"]); len(items) != 1 {
		t.Fatalf("expected duplicates absorbed, got %v", items)
	}
}

func TestAddCoercesNumericItemID(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, body := doJSON(t, router, http.MethodPost, "/api/user/user-1/watchlist",
		`{"itemId": 1399, "mediaType": "tv"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	items := decodeItems(t, body["watchlist"])
	if len(items) != 1 || items[0].ID != "1399" {
		t.Fatalf("expected numeric itemId stored as string, got %v", items)
	}
}

func TestAddToleratesExtraBodyFields(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, body := doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "603", "mediaType": "movie", "title": "The Matrix", "poster": "/x.jpg"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with extra fields in body, got %d: %s", rec.Code, rec.Body.String())
	}
	items := decodeItems(t, body["favorites"])
	if len(items) != 1 || items[0].ID != "603" {
		t.Fatalf("expected item stored, got %v", items)
	}
}

func TestAddValidation(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, _ := doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"mediaType": "movie"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing itemId, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "1", "mediaType": "book"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid media type, got %d", rec.Code)
	}
}

func TestRemoveFromFavorites(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "603", "mediaType": "movie"}`)

	target := "/api/user/user-1/favorites?" + url.Values{
		"mediaId":   []string{"603"},
		"mediaType": []string{"movie"},
	}.Encode()
	rec, body := doJSON(t, router, http.MethodDelete, target, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if items := decodeItems(t, body["favorites"]); len(items) != 0 {
		t.Fatalf("expected empty favorites after remove, got %v", items)
	}

	// The owner is still known with an empty set; repeating the delete is
	// a 200 no-op, not a 404.
	rec, body = doJSON(t, router, http.MethodDelete, target, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat delete, got %d: %s", rec.Code, rec.Body.String())
	}
	if items := decodeItems(t, body["favorites"]); len(items) != 0 {
		t.Fatalf("expected empty favorites, got %v", items)
	}
}

func TestRemoveUnknownOwnerIs404(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, _ := doJSON(t, router, http.MethodDelete,
		"/api/user/ghost/watchlist?mediaId=1&mediaType=movie", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown owner, got %d", rec.Code)
	}
}

func TestRemoveRequiresQueryParams(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/user/user-1/favorites?mediaId=1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing mediaType, got %d", rec.Code)
	}
}

func TestFavoritesAndWatchlistAreIndependentRoutes(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	doJSON(t, router, http.MethodPost, "/api/user/user-1/favorites",
		`{"itemId": "603", "mediaType": "movie"}`)
	doJSON(t, router, http.MethodPost, "/api/user/user-1/watchlist",
		`{"itemId": "1399", "mediaType": "tv"}`)

	rec, body := doJSON(t, router, http.MethodGet, "/api/user/user-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	favorites := decodeItems(t, body["favorites"])
	watchlist := decodeItems(t, body["watchlist"])
	if len(favorites) != 1 || favorites[0].ID != "603" {
		t.Fatalf("unexpected favorites: %v", favorites)
	}
	if len(watchlist) != 1 || watchlist[0].ID != "1399" {
		t.Fatalf("unexpected watchlist: %v", watchlist)
	}
}

func TestUnknownListRejected(t *testing.T) {
	router := newTestRouter(t, "http://unused.invalid")

	rec, _ := doJSON(t, router, http.MethodPost, "/api/user/user-1/queue",
		`{"itemId": "1", "mediaType": "movie"}`)
	// The route pattern only admits favorites|watchlist.
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected the route not to match, got %d", rec.Code)
	}
}
