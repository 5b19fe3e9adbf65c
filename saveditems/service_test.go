package saveditems

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"kirana/models"
)

// memStore is an in-memory ListStore. failKind makes Save error for that
// kind, to simulate a store outage mid-operation.
type memStore struct {
	mu       sync.Mutex
	lists    map[string]*models.SavedList
	failKind string
}

func newMemStore() *memStore {
	return &memStore{lists: make(map[string]*models.SavedList)}
}

func key(kind, userID string) string { return kind + ":" + userID }

func clone(list *models.SavedList) *models.SavedList {
	cp := *list
	cp.Items = append([]models.ListEntry(nil), list.Items...)
	return &cp
}

func (m *memStore) Load(_ context.Context, kind, userID string) (*models.SavedList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list, ok := m.lists[key(kind, userID)]
	if !ok {
		return nil, nil
	}
	return clone(list), nil
}

func (m *memStore) Save(_ context.Context, list *models.SavedList) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if list.Kind == m.failKind {
		return errors.New("store unavailable")
	}
	m.lists[key(list.Kind, list.UserID)] = clone(list)
	return nil
}

func mustGet(t *testing.T, svc *Service, kind, user string) *models.SavedList {
	t.Helper()
	list, err := svc.GetList(context.Background(), kind, user)
	if err != nil {
		t.Fatalf("GetList(%s, %s): %v", kind, user, err)
	}
	return list
}

func TestAddItemIsIdempotent(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	_, outcome, err := svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 1)
	if err != nil || outcome != OutcomeAdded {
		t.Fatalf("first add: outcome=%v err=%v", outcome, err)
	}

	list, outcome, err := svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if outcome != OutcomeAlreadyPresent {
		t.Fatalf("second add outcome = %v, want AlreadyPresent", outcome)
	}
	if len(list.Items) != 1 {
		t.Fatalf("entries = %d, want 1", len(list.Items))
	}
	if list.Items[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want 1 (no increment on duplicate add)", list.Items[0].Quantity)
	}
}

func TestWishlistQuantityPinnedToOne(t *testing.T) {
	svc := NewService(newMemStore())

	list, _, err := svc.AddItem(context.Background(), models.ListKindWishlist, "u1", "p1", 5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if list.Items[0].Quantity != 1 {
		t.Fatalf("wishlist quantity = %d, want 1", list.Items[0].Quantity)
	}
}

// The end-to-end scenario: add at quantity 1, increase to 2, then two
// decrements; the second decrement removes the entry rather than storing 0.
func TestCartLifecycle(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	if _, outcome, _ := svc.AddItem(ctx, models.ListKindCart, "u1", "pA", 0); outcome != OutcomeAdded {
		t.Fatalf("add outcome = %v", outcome)
	}
	list := mustGet(t, svc, models.ListKindCart, "u1")
	if len(list.Items) != 1 || list.Items[0].Quantity != 1 {
		t.Fatalf("after add: %+v", list.Items)
	}

	list, outcome, err := svc.IncreaseQuantity(ctx, models.ListKindCart, "u1", "pA")
	if err != nil || outcome != OutcomeUpdated || list.Items[0].Quantity != 2 {
		t.Fatalf("after increase: outcome=%v err=%v items=%+v", outcome, err, list.Items)
	}

	list, outcome, err = svc.DecreaseQuantity(ctx, models.ListKindCart, "u1", "pA")
	if err != nil || outcome != OutcomeUpdated || list.Items[0].Quantity != 1 {
		t.Fatalf("after first decrease: outcome=%v err=%v items=%+v", outcome, err, list.Items)
	}

	list, outcome, err = svc.DecreaseQuantity(ctx, models.ListKindCart, "u1", "pA")
	if err != nil || outcome != OutcomeRemoved {
		t.Fatalf("after second decrease: outcome=%v err=%v", outcome, err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("list not empty after floor removal: %+v", list.Items)
	}
}

func TestQuantityNeverBelowOne(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 3)
	for i := 0; i < 5; i++ {
		svc.DecreaseQuantity(ctx, models.ListKindCart, "u1", "p1")
	}

	list := mustGet(t, svc, models.ListKindCart, "u1")
	for _, entry := range list.Items {
		if entry.Quantity < 1 {
			t.Fatalf("stored quantity %d for %s", entry.Quantity, entry.ProductID)
		}
	}
}

func TestRemoveItemNotFound(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	if _, outcome, _ := svc.RemoveItem(ctx, models.ListKindCart, "u1", "p1"); outcome != OutcomeNotFound {
		t.Fatalf("remove from absent list: outcome = %v, want NotFound", outcome)
	}

	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 1)
	if _, outcome, _ := svc.RemoveItem(ctx, models.ListKindCart, "u1", "other"); outcome != OutcomeNotFound {
		t.Fatalf("remove missing entry: outcome = %v, want NotFound", outcome)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindWishlist, "u1", "p1", 1)

	outcome, err := svc.MoveItem(ctx, models.ListKindWishlist, models.ListKindCart, "u1", "p1")
	if err != nil || outcome != OutcomeMoved {
		t.Fatalf("wishlist->cart: outcome=%v err=%v", outcome, err)
	}
	if got := mustGet(t, svc, models.ListKindWishlist, "u1"); len(got.Items) != 0 {
		t.Fatalf("wishlist still has %d entries", len(got.Items))
	}
	cartList := mustGet(t, svc, models.ListKindCart, "u1")
	if len(cartList.Items) != 1 || cartList.Items[0].Quantity != 1 {
		t.Fatalf("cart after move: %+v", cartList.Items)
	}

	outcome, err = svc.MoveItem(ctx, models.ListKindCart, models.ListKindWishlist, "u1", "p1")
	if err != nil || outcome != OutcomeMoved {
		t.Fatalf("cart->wishlist: outcome=%v err=%v", outcome, err)
	}
	wish := mustGet(t, svc, models.ListKindWishlist, "u1")
	if len(wish.Items) != 1 || wish.Items[0].Quantity != 1 {
		t.Fatalf("wishlist after round trip: %+v", wish.Items)
	}
	if got := mustGet(t, svc, models.ListKindCart, "u1"); len(got.Items) != 0 {
		t.Fatalf("cart not empty after round trip: %+v", got.Items)
	}
}

func TestMoveIntoCartIncrements(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 2)
	svc.AddItem(ctx, models.ListKindWishlist, "u1", "p1", 1)

	outcome, err := svc.MoveItem(ctx, models.ListKindWishlist, models.ListKindCart, "u1", "p1")
	if err != nil || outcome != OutcomeMoved {
		t.Fatalf("move: outcome=%v err=%v", outcome, err)
	}

	cartList := mustGet(t, svc, models.ListKindCart, "u1")
	if len(cartList.Items) != 1 || cartList.Items[0].Quantity != 3 {
		t.Fatalf("cart after move-in: %+v", cartList.Items)
	}
	if got := mustGet(t, svc, models.ListKindWishlist, "u1"); len(got.Items) != 0 {
		t.Fatalf("wishlist not drained: %+v", got.Items)
	}
}

func TestMoveToWishlistPinsQuantity(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 4)

	outcome, err := svc.MoveItem(ctx, models.ListKindCart, models.ListKindWishlist, "u1", "p1")
	if err != nil || outcome != OutcomeMoved {
		t.Fatalf("move: outcome=%v err=%v", outcome, err)
	}

	wish := mustGet(t, svc, models.ListKindWishlist, "u1")
	if len(wish.Items) != 1 {
		t.Fatalf("wishlist entries = %d, want 1", len(wish.Items))
	}
	if wish.Items[0].Quantity != 1 {
		t.Fatalf("wishlist quantity after move-in = %d, want 1", wish.Items[0].Quantity)
	}
	if got := mustGet(t, svc, models.ListKindCart, "u1"); len(got.Items) != 0 {
		t.Fatalf("cart not drained: %+v", got.Items)
	}
}

func TestMoveWishlistRejectsDuplicate(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindWishlist, "u1", "p1", 1)
	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 4)

	outcome, err := svc.MoveItem(ctx, models.ListKindCart, models.ListKindWishlist, "u1", "p1")
	if err != nil || outcome != OutcomeAlreadyAtDestination {
		t.Fatalf("move: outcome=%v err=%v", outcome, err)
	}

	wish := mustGet(t, svc, models.ListKindWishlist, "u1")
	if len(wish.Items) != 1 || wish.Items[0].Quantity != 1 {
		t.Fatalf("wishlist mutated by rejected duplicate: %+v", wish.Items)
	}
	// The source entry is still consumed: the product lives in exactly
	// one list afterwards.
	if got := mustGet(t, svc, models.ListKindCart, "u1"); len(got.Items) != 0 {
		t.Fatalf("cart entry not removed: %+v", got.Items)
	}
}

func TestMoveSourceNotFound(t *testing.T) {
	svc := NewService(newMemStore())

	outcome, err := svc.MoveItem(context.Background(), models.ListKindWishlist, models.ListKindCart, "u1", "ghost")
	if err != nil || outcome != OutcomeSourceNotFound {
		t.Fatalf("outcome=%v err=%v, want SourceNotFound", outcome, err)
	}
}

// Destination-first ordering means a failed source removal leaves the
// item present in both lists (never in neither) and surfaces a
// *PartialError naming the move.
func TestMovePartialFailure(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 2)
	store.failKind = models.ListKindCart // source saves now fail

	_, err := svc.MoveItem(ctx, models.ListKindCart, models.ListKindWishlist, "u1", "p1")
	var perr *PartialError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PartialError", err)
	}
	if perr.FromKind != models.ListKindCart || perr.ToKind != models.ListKindWishlist {
		t.Fatalf("partial error keys: %+v", perr)
	}

	store.failKind = ""
	if got := mustGet(t, svc, models.ListKindWishlist, "u1"); len(got.Items) != 1 {
		t.Fatalf("destination missing the item: %+v", got.Items)
	}
	if got := mustGet(t, svc, models.ListKindCart, "u1"); len(got.Items) != 1 {
		t.Fatalf("source lost the item before the removal committed: %+v", got.Items)
	}
}

// Keyed-lock hardening: racing adds for the same (user, product) must not
// observe "absent" twice and append a duplicate entry.
func TestConcurrentAddsYieldSingleEntry(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	added := make(chan Outcome, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, outcome, err := svc.AddItem(ctx, models.ListKindCart, "u1", "p1", 1)
			if err != nil {
				t.Errorf("add: %v", err)
				return
			}
			added <- outcome
		}()
	}
	wg.Wait()
	close(added)

	inserts := 0
	for outcome := range added {
		if outcome == OutcomeAdded {
			inserts++
		}
	}
	if inserts != 1 {
		t.Fatalf("inserts = %d, want exactly 1", inserts)
	}
	list := mustGet(t, svc, models.ListKindCart, "u1")
	if len(list.Items) != 1 {
		t.Fatalf("entries = %d, want 1", len(list.Items))
	}
}

func TestMoveSameKindRejected(t *testing.T) {
	svc := NewService(newMemStore())
	if _, err := svc.MoveItem(context.Background(), models.ListKindCart, models.ListKindCart, "u1", "p1"); err == nil {
		t.Fatal("expected error moving within the same list kind")
	}
}

func TestFindEntryComparesStringForm(t *testing.T) {
	items := []models.ListEntry{}
	for i := 0; i < 3; i++ {
		items = append(items, models.ListEntry{ProductID: fmt.Sprintf("p%d", i), Quantity: 1})
	}
	if i := findEntry(items, "p1"); i != 1 {
		t.Fatalf("findEntry = %d, want 1", i)
	}
	if i := findEntry(items, "P1"); i != -1 {
		t.Fatalf("lookup is exact, got index %d for different-case id", i)
	}
}
