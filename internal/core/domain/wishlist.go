package domain

// A Wishlist keeps at most one entry per product id.
// Add enforces the set semantics itself, callers need no membership
// pre-check. Transitions return the next snapshot.
type Wishlist struct {
	Entries []Product
}

// Add appends the product unless it is already present.
func (w Wishlist) Add(p Product) Wishlist {
	if w.Contains(p.ID) {
		return w
	}
	next := make([]Product, len(w.Entries), len(w.Entries)+1)
	copy(next, w.Entries)
	return Wishlist{append(next, p)}
}

// Remove filters out the entry by id, absent id is a no-op.
func (w Wishlist) Remove(id int) Wishlist {
	var next []Product
	for _, p := range w.Entries {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return Wishlist{next}
}

// Toggle removes the product when present and adds it otherwise.
func (w Wishlist) Toggle(p Product) Wishlist {
	if w.Contains(p.ID) {
		return w.Remove(p.ID)
	}
	return w.Add(p)
}

func (w Wishlist) Contains(id int) bool {
	for _, p := range w.Entries {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (w Wishlist) Empty() bool {
	return len(w.Entries) == 0
}
