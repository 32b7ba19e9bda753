package models

import "time"

type OrderItem struct {
	ProductID string  `bson:"productid" json:"productid"`
	Name      string  `bson:"name" json:"name"`
	Image     string  `bson:"image" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

// Order is created once at checkout; OrderItems never change afterwards.
// Only the pay and deliver transitions mutate it.
type Order struct {
	OrderID         string        `bson:"orderid" json:"orderid"`
	OrderItems      []OrderItem   `bson:"orderItems" json:"orderItems"`
	ShippingAddress Address       `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string        `bson:"paymentMethod" json:"paymentMethod"`
	ItemsPrice      float64       `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice   float64       `bson:"shippingPrice" json:"shippingPrice"`
	TaxPrice        float64       `bson:"taxPrice" json:"taxPrice"`
	TotalPrice      float64       `bson:"totalPrice" json:"totalPrice"`
	UserID          string        `bson:"userid" json:"userid"`
	IsPaid          bool          `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentResult   PaymentResult `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	IsDelivered     bool          `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time    `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}
