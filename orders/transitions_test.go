package orders

import (
	"testing"
	"time"

	"vypar/models"
)

func TestApplyPaymentFirstTime(t *testing.T) {
	order := models.Order{OrderID: "o1"}
	result := models.PaymentResult{ID: "pay_1", Status: "COMPLETED", EmailAddress: "b@example.com"}
	now := time.Now()

	if !applyPayment(&order, result, now) {
		t.Fatal("first payment must report a transition")
	}
	if !order.IsPaid || order.PaidAt == nil || !order.PaidAt.Equal(now) {
		t.Fatalf("pay fields not stamped: %+v", order)
	}
	if order.PaymentResult != result {
		t.Fatalf("paymentResult = %+v", order.PaymentResult)
	}
}

func TestApplyPaymentIdempotent(t *testing.T) {
	order := models.Order{OrderID: "o1"}
	result := models.PaymentResult{ID: "pay_1", Status: "COMPLETED"}

	applyPayment(&order, result, time.Now())
	later := time.Now().Add(time.Minute)

	// same fields again: restamp, but no second notification
	if applyPayment(&order, result, later) {
		t.Fatal("re-payment must not report a transition")
	}
	if !order.IsPaid || order.PaymentResult != result {
		t.Fatalf("fields changed unexpectedly: %+v", order)
	}
	if !order.PaidAt.Equal(later) {
		t.Fatal("re-payment should restamp paidAt")
	}
}

func TestApplyDeliveryIdempotent(t *testing.T) {
	order := models.Order{OrderID: "o1"}
	first := time.Now()
	applyDelivery(&order, first)
	if !order.IsDelivered || !order.DeliveredAt.Equal(first) {
		t.Fatalf("deliver fields not stamped: %+v", order)
	}

	second := first.Add(time.Hour)
	applyDelivery(&order, second)
	if !order.IsDelivered || !order.DeliveredAt.Equal(second) {
		t.Fatalf("redelivery should restamp: %+v", order)
	}
}
