// Package order models the upstream marketplace order that fulfillment
// tracks: a placed, paid order with one or more lines, each line sold by one
// seller.
//
// Fulfillment treats orders as read-only facts. The package exists so that
// fulfillment units can be created from a consistent view of an order, not to
// manage the checkout lifecycle.
//
// Key business rules:
//   - An order has at least one line
//   - A line's total equals its unit price times its quantity
//   - The order total equals the sum of line totals plus shipping minus
//     discount
package order
