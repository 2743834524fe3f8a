package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// SellerGroup is the slice of one order that a single seller fulfills: that
// seller's lines plus their item subtotal. Each group becomes one fulfillment
// unit per line.
type SellerGroup struct {
	SellerID kernel.UUID
	Lines    []order.Line
	Subtotal kernel.Money
}

// GroupAssembler is a domain service that partitions an order's lines by
// seller. A marketplace order can mix products from several sellers; each
// seller ships independently, so fulfillment units are created per seller
// group.
type GroupAssembler struct{}

// NewGroupAssembler creates a new GroupAssembler instance.
func NewGroupAssembler() GroupAssembler {
	return GroupAssembler{}
}

// GroupBySeller partitions the order's lines into per-seller groups. Every
// line lands in exactly one group, line order within a group follows the
// order, and groups are sorted by seller ID for deterministic output.
func (a GroupAssembler) GroupBySeller(o *order.Order) ([]SellerGroup, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	bySeller := make(map[kernel.UUID]*SellerGroup)
	var sellerIDs []kernel.UUID
	for _, line := range o.Lines() {
		group, ok := bySeller[line.SellerID()]
		if !ok {
			group = &SellerGroup{SellerID: line.SellerID()}
			bySeller[line.SellerID()] = group
			sellerIDs = append(sellerIDs, line.SellerID())
		}
		group.Lines = append(group.Lines, line)
		group.Subtotal = group.Subtotal.Add(line.Total())
	}

	sort.Slice(sellerIDs, func(i, j int) bool {
		return sellerIDs[i].String() < sellerIDs[j].String()
	})

	groups := make([]SellerGroup, 0, len(sellerIDs))
	for _, sellerID := range sellerIDs {
		groups = append(groups, *bySeller[sellerID])
	}
	return groups, nil
}
