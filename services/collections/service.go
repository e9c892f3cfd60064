package collections

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cinedex/models"
)

var (
	ErrOwnerIDRequired  = errors.New("owner id is required")
	ErrMediaIDRequired  = errors.New("media id is required")
	ErrInvalidMediaType = errors.New("media type must be 'movie' or 'tv'")
	ErrInvalidList      = errors.New("unknown collection list")
	ErrOwnerNotFound    = errors.New("owner not found")
)

// store is the persistence surface the service needs.
type store interface {
	UpsertItem(ownerID, list string, item models.CollectionItem) error
	DeleteItem(ownerID, list string, item models.CollectionItem) (bool, error)
	ListItems(ownerID, list string) ([]models.CollectionItem, error)
	ListByOwner(ownerID string) (models.UserCollections, error)
	OwnerExists(ownerID string) (bool, error)
}

// Service exposes the favorite/watchlist set operations. All validation
// happens here, before any store access; per-owner serialization rides on
// the store's atomic insert-if-absent primitive.
type Service struct {
	store store
}

// NewService creates a collection service over the given store.
func NewService(store store) *Service {
	return &Service{store: store}
}

// Add inserts the item into the named list if absent and returns the
// updated list. Calling twice with the same item yields the same result;
// the owner record is created implicitly on first add.
func (s *Service) Add(ownerID, list string, item models.CollectionItem) ([]models.CollectionItem, error) {
	ownerID, item, err := s.validate(ownerID, list, item)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpsertItem(ownerID, list, item); err != nil {
		return nil, fmt.Errorf("add to %s: %w", list, err)
	}
	return s.store.ListItems(ownerID, list)
}

// Remove deletes the item from the named list and returns the updated
// list. Removing an absent item from a known owner is a no-op; an owner
// that has never written anything yields ErrOwnerNotFound.
func (s *Service) Remove(ownerID, list string, item models.CollectionItem) ([]models.CollectionItem, error) {
	ownerID, item, err := s.validate(ownerID, list, item)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.OwnerExists(ownerID)
	if err != nil {
		return nil, fmt.Errorf("remove from %s: %w", list, err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	if _, err := s.store.DeleteItem(ownerID, list, item); err != nil {
		return nil, fmt.Errorf("remove from %s: %w", list, err)
	}
	return s.store.ListItems(ownerID, list)
}

// Lists returns both sets for an owner. Unknown owners read as empty
// collections, never an error.
func (s *Service) Lists(ownerID string) (models.UserCollections, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return models.UserCollections{}, ErrOwnerIDRequired
	}
	return s.store.ListByOwner(ownerID)
}

func (s *Service) validate(ownerID, list string, item models.CollectionItem) (string, models.CollectionItem, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", item, ErrOwnerIDRequired
	}
	if !models.IsValidList(list) {
		return "", item, ErrInvalidList
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return "", item, ErrMediaIDRequired
	}
	if !models.IsValidMediaType(item.MediaType) {
		return "", item, ErrInvalidMediaType
	}
	return ownerID, item, nil
}

// CoerceItemID normalizes the loosely-typed itemId clients send (string or
// number) to its canonical string form. Returns "" for anything else.
func CoerceItemID(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}
