package app

import "sync"

// Operation names a logical mutation for re-entrancy tracking.
type Operation string

const (
	OpSaveChild      Operation = "save-child"
	OpDeleteChild    Operation = "delete-child"
	OpSaveRecord     Operation = "save-record"
	OpDeleteRecord   Operation = "delete-record"
	OpSaveBook       Operation = "save-book"
	OpAddWishlist    Operation = "add-wishlist"
	OpRemoveWishlist Operation = "remove-wishlist"
)

// OpState is the in-flight state of one operation.
type OpState int

const (
	Idle OpState = iota
	Pending
)

func (s OpState) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

type guard struct {
	mu      sync.Mutex
	pending map[Operation]bool
}

func newGuard() *guard {
	return &guard{pending: make(map[Operation]bool)}
}

// begin moves op to Pending and reports false if it already was.
func (g *guard) begin(op Operation) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending[op] {
		return false
	}
	g.pending[op] = true
	return true
}

func (g *guard) end(op Operation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, op)
}

func (g *guard) state(op Operation) OpState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending[op] {
		return Pending
	}
	return Idle
}

func (g *guard) snapshot() []Operation {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Operation, 0, len(g.pending))
	for op := range g.pending {
		out = append(out, op)
	}
	return out
}
