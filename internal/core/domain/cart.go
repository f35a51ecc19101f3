package domain

type CartLine struct {
	Product  Product
	Quantity int
}

// A Cart holds at most one line per product id.
//
// Transition methods never mutate the receiver, they return
// the next cart snapshot.
type Cart struct {
	Lines []CartLine
}

// Add merges the product into the cart: an existing line gets its
// quantity incremented by qty, otherwise a new line is appended.
// Quantity below one is treated as one.
func (c Cart) Add(p Product, qty int) Cart {
	if qty < 1 {
		qty = 1
	}

	next := c.copyLines()
	for i := range next {
		if next[i].Product.ID == p.ID {
			next[i].Quantity += qty
			return Cart{next}
		}
	}
	return Cart{append(next, CartLine{Product: p, Quantity: qty})}
}

// UpdateQuantity sets the line quantity verbatim. Lines are never
// auto-removed here, callers map a quantity below one to Remove.
// Unknown id is a no-op.
func (c Cart) UpdateQuantity(id, qty int) Cart {
	next := c.copyLines()
	for i := range next {
		if next[i].Product.ID == id {
			next[i].Quantity = qty
			break
		}
	}
	return Cart{next}
}

// Remove deletes the line with the given product id.
// Removing an absent id is a no-op.
func (c Cart) Remove(id int) Cart {
	var next []CartLine
	for _, l := range c.Lines {
		if l.Product.ID != id {
			next = append(next, l)
		}
	}
	return Cart{next}
}

// Set replaces the whole line list.
func (Cart) Set(lines []CartLine) Cart {
	return Cart{lines}
}

func (c Cart) Contains(id int) bool {
	for _, l := range c.Lines {
		if l.Product.ID == id {
			return true
		}
	}
	return false
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

func (c Cart) TotalQuantity() (n int) {
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) copyLines() []CartLine {
	if len(c.Lines) == 0 {
		return nil
	}
	next := make([]CartLine, len(c.Lines))
	copy(next, c.Lines)
	return next
}
