package domain

// Cart is an ordered sequence of product ID references held by one session.
// References are weak: the cart never owns catalog entries, duplicates are
// allowed (one entry per unit), and IDs that resolve to nothing are simply
// skipped when totals are computed.
type Cart struct {
	items []int64
}

// Add appends a product reference. No existence check is performed;
// unresolvable references contribute nothing to totals.
func (c *Cart) Add(productID int64) {
	c.items = append(c.items, productID)
}

// Remove drops every occurrence of the given product ID.
func (c *Cart) Remove(productID int64) {
	filtered := c.items[:0]
	for _, id := range c.items {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	c.items = filtered
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of entries, duplicates included.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []int64 {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]int64, len(c.items))
	copy(out, c.items)
	return out
}

// DistinctIDs returns the unique product IDs in order of first appearance.
func (c *Cart) DistinctIDs() []int64 {
	seen := make(map[int64]struct{}, len(c.items))
	var distinct []int64
	for _, id := range c.items {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}

// Total sums the current price of every resolvable entry, duplicates
// counted individually, rounded to currency precision. The lookup resolves
// a product ID against the catalog snapshot.
func (c *Cart) Total(lookup func(int64) (Product, bool)) float64 {
	total := 0.0
	for _, id := range c.items {
		product, ok := lookup(id)
		if !ok {
			continue
		}
		total += product.CurrentPrice
	}
	return Round(total)
}
