// Package session caches cart snapshots per POS session. The cache is
// best-effort: a failed save or a corrupt slot never surfaces as an error,
// the cart simply continues in memory for that session.
package session

import (
	"context"
	"encoding/json"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
)

// Store is a per-session snapshot slot.
type Store interface {
	Save(ctx context.Context, sessionID string, snap cart.Snapshot)
	Load(ctx context.Context, sessionID string) (cart.Snapshot, bool)
	Ping(ctx context.Context) error
}

// SaveResult records the outcome of a snapshot write so failures can be
// logged. It stays inside the adapter; callers of Save never see it.
type SaveResult struct {
	Err error
}

func (r SaveResult) Saved() bool { return r.Err == nil }

// decodeSnapshot turns stored bytes back into a snapshot. Malformed JSON or
// a missing items collection means "no snapshot", not an error. Items that
// violate the cart's invariants are dropped rather than restored; the cart
// holds at most one line per id, so a duplicated id keeps its first
// occurrence and later ones are discarded.
func decodeSnapshot(body []byte) (cart.Snapshot, bool) {
	var snap cart.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return cart.Snapshot{}, false
	}
	if snap.Items == nil {
		return cart.Snapshot{}, false
	}
	kept := make([]cart.LineItem, 0, len(snap.Items))
	seen := make(map[string]struct{}, len(snap.Items))
	for _, it := range snap.Items {
		if it.ID == "" || it.Name == "" || it.UnitPriceCents < 0 || it.Quantity < 1 {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		kept = append(kept, it)
	}
	return cart.Snapshot{Items: kept}, true
}
