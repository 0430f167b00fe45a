package domain

import "fmt"

// Restock policy constants. The monitor targets cheap products running low:
// low stock alone is not enough, the base price must also sit under the
// ceiling.
const (
	// RestockStockThreshold is the stock level below which restocking triggers.
	RestockStockThreshold = 10
	// RestockBasePriceCeiling bounds which products qualify for restocking.
	RestockBasePriceCeiling = 20.0
	// RestockIncrement is the number of units added per restock.
	RestockIncrement = 10
)

// NeedsRestock reports whether the restock rule selects this product.
// The rule is level-triggered: it holds for as long as the product sits in
// the qualifying band, so a sweep may fire repeatedly until the restock
// itself lifts stock over the threshold.
func NeedsRestock(product Product) bool {
	return product.Stock < RestockStockThreshold && product.BasePrice < RestockBasePriceCeiling
}

// RestockNotice formats the operator-facing notification for one restock.
func RestockNotice(productName string) string {
	return fmt.Sprintf("Product %q has been restocked.", productName)
}
