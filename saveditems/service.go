// Package saveditems implements the cart/wishlist engine: per-user lists
// of (product, quantity) entries with find-or-append adds, a quantity
// floor of 1, and destination-first moves between the two list kinds.
package saveditems

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"kirana/models"
)

// ListStore persists one document per (kind, user). Load returns
// (nil, nil) when no list exists yet; Save upserts by that key.
type ListStore interface {
	Load(ctx context.Context, kind, userID string) (*models.SavedList, error)
	Save(ctx context.Context, list *models.SavedList) error
}

// Service owns every read-modify-write against a user's lists. A mutex
// per (kind, user) key serializes concurrent mutations of the same list,
// so two racing adds cannot both observe "absent" and append twice.
type Service struct {
	store ListStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store ListStore) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) lock(kind, userID string) *sync.Mutex {
	key := kind + ":" + userID
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[key] = l
	return l
}

// GetList returns the user's list, or an empty one when none exists.
// Empty never surfaces as an error here; the transport layer decides
// whether empty means 404.
func (s *Service) GetList(ctx context.Context, kind, userID string) (*models.SavedList, error) {
	list, err := s.store.Load(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = newList(kind, userID, time.Now())
	}
	return list, nil
}

// AddItem appends a new entry, creating the list on first use. An entry
// already present for the product is reported as OutcomeAlreadyPresent
// with no mutation: add is idempotent, and the sentinel is
// distinguishable from both an insert and an error. Wishlist entries are
// pinned to quantity 1.
func (s *Service) AddItem(ctx context.Context, kind, userID, productID string, quantity int) (*models.SavedList, Outcome, error) {
	if quantity < 1 {
		quantity = 1
	}
	if kind == models.ListKindWishlist {
		quantity = 1
	}

	l := s.lock(kind, userID)
	l.Lock()
	defer l.Unlock()

	list, err := s.store.Load(ctx, kind, userID)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	if list == nil {
		list = newList(kind, userID, now)
	}

	if findEntry(list.Items, productID) >= 0 {
		return list, OutcomeAlreadyPresent, nil
	}

	list.Items = append(list.Items, models.ListEntry{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   now,
	})
	list.UpdatedAt = now
	if err := s.store.Save(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, OutcomeAdded, nil
}

// RemoveItem deletes the entry for productID. Missing list or entry is
// OutcomeNotFound.
func (s *Service) RemoveItem(ctx context.Context, kind, userID, productID string) (*models.SavedList, Outcome, error) {
	l := s.lock(kind, userID)
	l.Lock()
	defer l.Unlock()

	list, err := s.store.Load(ctx, kind, userID)
	if err != nil {
		return nil, 0, err
	}
	if list == nil {
		return nil, OutcomeNotFound, nil
	}
	i := findEntry(list.Items, productID)
	if i < 0 {
		return list, OutcomeNotFound, nil
	}

	list.Items = removeEntry(list.Items, i)
	list.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, OutcomeRemoved, nil
}

// IncreaseQuantity bumps the entry's quantity by one.
func (s *Service) IncreaseQuantity(ctx context.Context, kind, userID, productID string) (*models.SavedList, Outcome, error) {
	l := s.lock(kind, userID)
	l.Lock()
	defer l.Unlock()

	list, err := s.store.Load(ctx, kind, userID)
	if err != nil {
		return nil, 0, err
	}
	if list == nil {
		return nil, OutcomeNotFound, nil
	}
	i := findEntry(list.Items, productID)
	if i < 0 {
		return list, OutcomeNotFound, nil
	}

	list.Items[i].Quantity++
	list.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, OutcomeUpdated, nil
}

// DecreaseQuantity drops the entry's quantity by one; an entry at
// quantity 1 is removed entirely. A stored quantity never reaches 0.
func (s *Service) DecreaseQuantity(ctx context.Context, kind, userID, productID string) (*models.SavedList, Outcome, error) {
	l := s.lock(kind, userID)
	l.Lock()
	defer l.Unlock()

	list, err := s.store.Load(ctx, kind, userID)
	if err != nil {
		return nil, 0, err
	}
	if list == nil {
		return nil, OutcomeNotFound, nil
	}
	i := findEntry(list.Items, productID)
	if i < 0 {
		return list, OutcomeNotFound, nil
	}

	outcome := OutcomeUpdated
	if list.Items[i].Quantity > 1 {
		list.Items[i].Quantity--
	} else {
		list.Items = removeEntry(list.Items, i)
		outcome = OutcomeRemoved
	}
	list.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, outcome, nil
}

// MoveItem transfers the entry for productID from one list kind to the
// other. The destination is written before the source entry is removed,
// so an interrupted move leaves the item present in both lists rather
// than in neither; the dangling second write surfaces as *PartialError.
//
// Cart move-in increments an existing entry by the carried quantity.
// Wishlist move-in stores quantity 1 regardless of the carried quantity;
// with the product already present it leaves the destination untouched
// (duplicates rejected) and reports OutcomeAlreadyAtDestination. The
// source entry is removed either way.
func (s *Service) MoveItem(ctx context.Context, fromKind, toKind, userID, productID string) (Outcome, error) {
	if fromKind == toKind {
		return 0, fmt.Errorf("cannot move within %q", fromKind)
	}

	// Lock both list keys in a fixed order to keep opposite-direction
	// moves from deadlocking.
	first, second := s.lock(fromKind, userID), s.lock(toKind, userID)
	if toKind < fromKind {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	source, err := s.store.Load(ctx, fromKind, userID)
	if err != nil {
		return 0, err
	}
	if source == nil {
		return OutcomeSourceNotFound, nil
	}
	si := findEntry(source.Items, productID)
	if si < 0 {
		return OutcomeSourceNotFound, nil
	}
	carried := source.Items[si]
	if toKind == models.ListKindWishlist {
		carried.Quantity = 1
	}

	dest, err := s.store.Load(ctx, toKind, userID)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	if dest == nil {
		dest = newList(toKind, userID, now)
	}

	outcome := OutcomeMoved
	destChanged := true
	if di := findEntry(dest.Items, productID); di >= 0 {
		if toKind == models.ListKindCart {
			dest.Items[di].Quantity += carried.Quantity
		} else {
			outcome = OutcomeAlreadyAtDestination
			destChanged = false
		}
	} else {
		dest.Items = append(dest.Items, models.ListEntry{
			ProductID: productID,
			Quantity:  carried.Quantity,
			AddedAt:   now,
		})
	}

	if destChanged {
		dest.UpdatedAt = now
		if err := s.store.Save(ctx, dest); err != nil {
			return 0, err
		}
	}

	source.Items = removeEntry(source.Items, si)
	source.UpdatedAt = now
	if err := s.store.Save(ctx, source); err != nil {
		if destChanged {
			perr := &PartialError{
				FromKind:  fromKind,
				ToKind:    toKind,
				UserID:    userID,
				ProductID: productID,
				Err:       err,
			}
			log.Printf("move partial failure: %v", perr)
			return 0, perr
		}
		return 0, err
	}
	return outcome, nil
}
