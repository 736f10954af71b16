// Package order models the order summary that delivery preparation works on.
//
// The package includes:
//   - Order: an opaque identifier plus the total weight to ship
//   - Product: a weighted line item, summed by NewOrderFromProducts
//
// Orders are immutable; nothing in delivery preparation changes them.
package order
