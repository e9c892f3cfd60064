package database

import (
	"database/sql"
	"fmt"

	"cinedex/models"
)

// CollectionRepository persists per-owner favorite/watchlist sets. The
// first insert for an owner also records the owner itself, and the record
// outlives the items: an owner whose sets are emptied again stays known.
// Set membership is enforced by a UNIQUE constraint so concurrent adds of
// the same item collapse to one row.
type CollectionRepository struct {
	db *sql.DB
}

// NewCollectionRepository creates a repository over the given connection.
func NewCollectionRepository(db *sql.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// UpsertItem inserts the item into the named list if absent, registering
// the owner on first contact. Duplicate inserts are absorbed by the UNIQUE
// constraints, never an error.
func (r *CollectionRepository) UpsertItem(ownerID, list string, item models.CollectionItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("upsert collection item: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO owners (owner_id) VALUES (?)
		ON CONFLICT (owner_id) DO NOTHING`,
		ownerID); err != nil {
		return fmt.Errorf("upsert owner: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO collection_items (owner_id, list, media_id, media_type)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id, list, media_id, media_type) DO NOTHING`,
		ownerID, list, item.ID, item.MediaType); err != nil {
		return fmt.Errorf("upsert collection item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert collection item: %w", err)
	}
	return nil
}

// DeleteItem removes the item from the named list. Returns whether a row
// was actually deleted.
func (r *CollectionRepository) DeleteItem(ownerID, list string, item models.CollectionItem) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM collection_items
		WHERE owner_id = ? AND list = ? AND media_id = ? AND media_type = ?`,
		ownerID, list, item.ID, item.MediaType)
	if err != nil {
		return false, fmt.Errorf("delete collection item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete collection item: %w", err)
	}
	return n > 0, nil
}

// ListItems returns the named list for an owner in insertion order. Unknown
// owners yield an empty slice.
func (r *CollectionRepository) ListItems(ownerID, list string) ([]models.CollectionItem, error) {
	rows, err := r.db.Query(`
		SELECT media_id, media_type FROM collection_items
		WHERE owner_id = ? AND list = ?
		ORDER BY id`,
		ownerID, list)
	if err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	defer rows.Close()

	items := make([]models.CollectionItem, 0)
	for rows.Next() {
		var item models.CollectionItem
		if err := rows.Scan(&item.ID, &item.MediaType); err != nil {
			return nil, fmt.Errorf("scan collection item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	return items, nil
}

// ListByOwner returns both lists for an owner. Unknown owners yield empty
// slices, never an error.
func (r *CollectionRepository) ListByOwner(ownerID string) (models.UserCollections, error) {
	favorites, err := r.ListItems(ownerID, models.ListFavorites)
	if err != nil {
		return models.UserCollections{}, err
	}
	watchlist, err := r.ListItems(ownerID, models.ListWatchlist)
	if err != nil {
		return models.UserCollections{}, err
	}
	return models.UserCollections{Favorites: favorites, Watchlist: watchlist}, nil
}

// OwnerExists reports whether the owner has ever written to either list.
// Emptying both lists does not un-register an owner.
func (r *CollectionRepository) OwnerExists(ownerID string) (bool, error) {
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM owners WHERE owner_id = ?`, ownerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check owner: %w", err)
	}
	return true, nil
}
