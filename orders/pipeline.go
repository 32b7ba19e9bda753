package orders

import (
	"errors"
	"fmt"
	"math"

	"vypar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// scopedItemRows is the join every listing and summary shares: one row per
// line item with the referenced product attached, optionally narrowed to one
// seller's products. Empty sellerID (admin scope) leaves the join unfiltered.
func scopedItemRows(sellerID string) mongo.Pipeline {
	p := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$orderItems"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "orderItems.productid"},
			{Key: "foreignField", Value: "productid"},
			{Key: "as", Value: "product"},
		}}},
		bson.D{{Key: "$unwind", Value: "$product"}},
	}
	if sellerID != "" {
		p = append(p, bson.D{{Key: "$match", Value: bson.D{
			{Key: "product.sellerid", Value: sellerID},
		}}})
	}
	return p
}

// itemRowsWithUser extends the scoped join with the buyer's display name —
// only the name, never the full user record.
func itemRowsWithUser(sellerID string) mongo.Pipeline {
	p := scopedItemRows(sellerID)
	return append(p,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userid"},
			{Key: "foreignField", Value: "userid"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "user", Value: "$user.name"}}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
	)
}

func userSalesPipeline(sellerID string) mongo.Pipeline {
	return append(scopedItemRows(sellerID),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$userid"},
			{Key: "numOrders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
	)
}

func dailySalesPipeline(sellerID string) mongo.Pipeline {
	return append(scopedItemRows(sellerID),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "orders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "sales", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)
}

func categoryCountPipeline(sellerID string) mongo.Pipeline {
	return append(scopedItemRows(sellerID),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	)
}

// eligibleSeller reports whether any of the order's products belongs to the
// seller. A seller who contributed even one line item may deliver the whole
// order; the predicate is existential, not universal.
func eligibleSeller(products []models.Product, sellerID string) bool {
	for _, p := range products {
		if p.SellerID == sellerID {
			return true
		}
	}
	return false
}

const priceTolerance = 0.01

// ValidateTotals recomputes the checkout arithmetic instead of trusting the
// caller's figures: the item subtotal must match the line items and the grand
// total must match its parts.
func ValidateTotals(o models.Order) error {
	if len(o.OrderItems) == 0 {
		return errors.New("order has no items")
	}
	var items float64
	for _, it := range o.OrderItems {
		if it.ProductID == "" {
			return errors.New("order item missing product reference")
		}
		if it.Quantity < 1 {
			return fmt.Errorf("invalid quantity %d for %s", it.Quantity, it.ProductID)
		}
		if it.Price < 0 {
			return fmt.Errorf("negative price for %s", it.ProductID)
		}
		items += float64(it.Quantity) * it.Price
	}
	if math.Abs(items-o.ItemsPrice) > priceTolerance {
		return fmt.Errorf("itemsPrice %.2f does not match line items %.2f", o.ItemsPrice, items)
	}
	if o.ShippingPrice < 0 || o.TaxPrice < 0 {
		return errors.New("negative shipping or tax")
	}
	if math.Abs(o.ItemsPrice+o.ShippingPrice+o.TaxPrice-o.TotalPrice) > priceTolerance {
		return fmt.Errorf("totalPrice %.2f does not match parts", o.TotalPrice)
	}
	return nil
}
