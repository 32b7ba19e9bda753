package models

// Flattened row of the order-item/product/user join used by the seller and
// admin order listings.
type OrderItemRow struct {
	OrderID     string    `bson:"orderid" json:"orderid"`
	Item        OrderItem `bson:"orderItems" json:"orderItem"`
	Product     Product   `bson:"product" json:"product"`
	UserName    string    `bson:"user" json:"user"`
	TotalPrice  float64   `bson:"totalPrice" json:"totalPrice"`
	IsPaid      bool      `bson:"isPaid" json:"isPaid"`
	IsDelivered bool      `bson:"isDelivered" json:"isDelivered"`
}

type UserSales struct {
	UserID     string  `bson:"_id" json:"userid"`
	NumOrders  int64   `bson:"numOrders" json:"numOrders"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
}

type DailySales struct {
	Day    string  `bson:"_id" json:"day"`
	Orders int64   `bson:"orders" json:"orders"`
	Sales  float64 `bson:"sales" json:"sales"`
}

type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}
