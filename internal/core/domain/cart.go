package domain

// CartLine is one row of the cart: a product/size/quantity tuple with the
// unit price captured at add time. The price is never recomputed from the
// catalog afterwards.
type CartLine struct {
	LineID    string
	ProductID string
	Size      string
	Quantity  int
	Price     float64
}

// SameSelection reports whether two lines refer to the same
// (product, size) pair. The cart holds at most one line per pair.
func (l CartLine) SameSelection(productID, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// CartTotal folds price*quantity over the given lines.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// CartCount folds quantity over the given lines.
func CartCount(lines []CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
