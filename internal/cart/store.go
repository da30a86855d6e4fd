package cart

import (
	"context"
	"sync"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
)

// Saver persists snapshots best-effort. Implementations must swallow their
// own failures; the cart keeps operating in memory when the backing slot is
// unavailable.
type Saver interface {
	Save(ctx context.Context, sessionID string, snap Snapshot)
	Load(ctx context.Context, sessionID string) (Snapshot, bool)
}

// Store owns one POS session's cart. It is the only component allowed to
// mutate the line item collection; everything else reads snapshots or
// derived totals. All mutations are serialized behind the mutex because the
// read of current state and the write of the next state must not interleave.
type Store struct {
	mu           sync.Mutex
	items        []LineItem
	sessionID    string
	rateTenthBps int64
	saver        Saver
}

// NewStore creates a store for the given session, restoring any snapshot
// the saver has cached for it. A nil saver disables persistence.
func NewStore(ctx context.Context, sessionID string, rateTenthBps int64, saver Saver) *Store {
	s := &Store{
		sessionID:    sessionID,
		rateTenthBps: rateTenthBps,
		saver:        saver,
	}
	if saver != nil {
		if snap, ok := saver.Load(ctx, sessionID); ok {
			s.items = snap.Items
		}
	}
	return s
}

// AddItem adds the candidate to the cart. If an item with the same id is
// already present its quantity grows by the candidate's quantity and the
// price already in the cart wins; a second add must not silently reprice
// the line. Non-empty candidate notes replace the existing notes, empty
// notes leave them alone. Invalid candidates are a no-op.
func (s *Store) AddItem(ctx context.Context, cand Candidate) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !cand.valid() {
		return s.snapshotLocked()
	}

	for i := range s.items {
		if s.items[i].ID == cand.ID {
			s.items[i].Quantity += cand.Quantity
			if cand.Notes != "" {
				s.items[i].Notes = cand.Notes
			}
			s.persistLocked(ctx)
			return s.snapshotLocked()
		}
	}

	s.items = append(s.items, LineItem{
		ID:             cand.ID,
		Name:           cand.Name,
		UnitPriceCents: cand.UnitPriceCents,
		Quantity:       cand.Quantity,
		Notes:          cand.Notes,
	})
	s.persistLocked(ctx)
	return s.snapshotLocked()
}

// RemoveItem drops the item with the given id. No-op if absent.
func (s *Store) RemoveItem(ctx context.Context, id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			break
		}
	}
	return s.snapshotLocked()
}

// Increment raises the matched item's quantity by one. No-op if absent.
func (s *Store) Increment(ctx context.Context, id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			s.persistLocked(ctx)
			break
		}
	}
	return s.snapshotLocked()
}

// Decrement lowers the matched item's quantity by one. An item that would
// reach zero is removed entirely instead of retained at zero. No-op if
// absent, so repeated decrements past removal are harmless.
func (s *Store) Decrement(ctx context.Context, id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity <= 1 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity--
			}
			s.persistLocked(ctx)
			break
		}
	}
	return s.snapshotLocked()
}

// Clear empties the cart. Clearing an already empty cart is a no-op and
// does not touch the persistence slot.
func (s *Store) Clear(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return s.snapshotLocked()
	}
	s.items = nil
	s.persistLocked(ctx)
	return s.snapshotLocked()
}

// SetItemNote replaces the matched item's notes with the given string.
// No-op if absent.
func (s *Store) SetItemNote(ctx context.Context, id, note string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Notes = note
			s.persistLocked(ctx)
			break
		}
	}
	return s.snapshotLocked()
}

// Snapshot returns a copy of the current line items.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Totals derives subtotal, tax and total from the current items.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

// View returns the snapshot and its totals under one lock acquisition so
// the pair is always consistent.
func (s *Store) View() (Snapshot, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), s.totalsLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items}
}

func (s *Store) totalsLocked() Totals {
	lines := make([]money.Line, len(s.items))
	for i, it := range s.items {
		lines[i] = money.Line{UnitPriceCents: it.UnitPriceCents, Quantity: it.Quantity}
	}
	sub := money.SubtotalCents(lines)
	tax := money.TaxCents(sub, s.rateTenthBps)
	return Totals{
		SubtotalCents: sub,
		TaxCents:      tax,
		TotalCents:    money.TotalCents(sub, tax),
	}
}

// persistLocked writes through to the saver. Saves happen under the store
// lock so a later snapshot can never be overwritten by an earlier one.
func (s *Store) persistLocked(ctx context.Context) {
	if s.saver == nil {
		return
	}
	s.saver.Save(ctx, s.sessionID, s.snapshotLocked())
}
