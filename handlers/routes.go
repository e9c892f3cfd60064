package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts all API routes on the router.
func RegisterRoutes(r *mux.Router, collections *CollectionsHandler, media *MediaHandler, catalog *CatalogHandler) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user/{ownerID}", collections.Get).Methods(http.MethodGet)
	api.HandleFunc("/user/{ownerID}/{list:favorites|watchlist}", collections.Add).Methods(http.MethodPost)
	api.HandleFunc("/user/{ownerID}/{list:favorites|watchlist}", collections.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/user/{ownerID}/{list:favorites|watchlist}", collections.Options).Methods(http.MethodOptions)
	api.HandleFunc("/user/{ownerID}/{list:favorites|watchlist}/details", media.CollectionDetails).Methods(http.MethodGet)

	// browse before the {mediaType}/{id} catch-all
	api.HandleFunc("/media/browse", media.Browse).Methods(http.MethodGet)
	api.HandleFunc("/media/{mediaType}/{id}", media.Detail).Methods(http.MethodGet)

	api.HandleFunc("/catalog", catalog.List).Methods(http.MethodGet)
}
