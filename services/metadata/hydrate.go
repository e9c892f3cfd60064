package metadata

import (
	"context"
	"log/slog"
	"sync"

	"cinedex/models"

	"github.com/sourcegraph/conc/pool"
)

// Hydrator expands stored collection items (ids + types only) into full
// media details for rendering. It holds no cache; every call is
// request-scoped.
type Hydrator struct {
	log        *slog.Logger
	client     *Client
	maxWorkers int
}

// NewHydrator creates a hydrator fanning out over at most maxWorkers
// concurrent fetches. The client's shared limiter still bounds actual
// upstream calls process-wide.
func NewHydrator(client *Client, maxWorkers int) *Hydrator {
	if maxWorkers <= 0 {
		maxWorkers = defaultHydrateWorkers
	}
	return &Hydrator{
		log:        slog.Default().With("component", "hydrator"),
		client:     client,
		maxWorkers: maxWorkers,
	}
}

const defaultHydrateWorkers = 15

// Hydrate fetches details for every item. A failed item is logged and
// skipped so one broken id never hides the rest of the collection; output
// order is whatever the fan-out produced.
func (h *Hydrator) Hydrate(ctx context.Context, items []models.CollectionItem) []models.MediaDetail {
	if len(items) == 0 {
		return []models.MediaDetail{}
	}

	workers := pool.New().WithMaxGoroutines(h.maxWorkers)

	results := make([]models.MediaDetail, 0, len(items))
	resultsMu := sync.Mutex{}

	for _, item := range items {
		item := item
		workers.Go(func() {
			detail, err := h.client.Detail(ctx, item.MediaType, item.ID)
			if err != nil {
				h.log.Warn("skipping item, detail fetch failed",
					"media_type", item.MediaType,
					"id", item.ID,
					"err", err)
				return
			}
			resultsMu.Lock()
			results = append(results, *detail)
			resultsMu.Unlock()
		})
	}
	workers.Wait()

	return results
}
