// Package carrier models the catalog of shipping companies the marketplace
// works with. Carriers are reference data: each carries a promised transit
// time used to refine a unit's delivery estimate once the seller hands the
// package over.
package carrier
