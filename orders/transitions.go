package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vypar/db"
	"vypar/mailer"
	"vypar/middleware"
	"vypar/models"
	"vypar/mq"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// applyPayment stamps the pay transition and reports whether this call moved
// the order from unpaid to paid. Re-paying restamps the fields but must not
// trigger another notification.
func applyPayment(order *models.Order, result models.PaymentResult, now time.Time) bool {
	first := !order.IsPaid
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = result
	return first
}

// applyDelivery stamps the deliver transition; reapplying just restamps.
func applyDelivery(order *models.Order, now time.Time) {
	order.IsDelivered = true
	order.DeliveredAt = &now
}

// PayOrder marks the order paid and kicks off a best-effort confirmation
// email. The email runs in a goroutine and its failure never fails the pay.
func PayOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("id")}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order Not Found")
		return
	}

	var result models.PaymentResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment data")
		return
	}

	notify := applyPayment(&order, result, time.Now())

	_, err := db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": order.OrderID}, bson.M{"$set": bson.M{
		"isPaid":        order.IsPaid,
		"paidAt":        order.PaidAt,
		"paymentResult": order.PaymentResult,
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	if notify {
		go notifyPaid(order)
		go mq.Emit(context.Background(), "order-paid", models.Index{
			EntityType: "order", EntityId: order.OrderID, Method: "PUT",
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order Paid", "order": order})
}

func notifyPaid(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": order.UserID}).Decode(&user); err != nil {
		log.Printf("order %s: confirmation skipped, user lookup failed: %v", order.OrderID, err)
		return
	}
	if err := mailer.SendOrderPaid(user.Email, user.Name, order.OrderID, order.TotalPrice); err != nil {
		log.Printf("order %s: confirmation email failed: %v", order.OrderID, err)
	}
}

// DeliverOrder marks the order delivered. Only a seller owning at least one
// of the order's products may flip it, the same rule the deliverable check
// reports to the dashboard.
func DeliverOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("id")}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order Not Found")
		return
	}

	caller := middleware.CallerFromRequest(r)
	products, err := orderProducts(ctx, order)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check order")
		return
	}
	if !eligibleSeller(products, caller.SellerID) {
		utils.RespondWithError(w, http.StatusUnauthorized, "None of the order items belong to you")
		return
	}

	applyDelivery(&order, time.Now())

	_, err = db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": order.OrderID}, bson.M{"$set": bson.M{
		"isDelivered": order.IsDelivered,
		"deliveredAt": order.DeliveredAt,
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order Delivered"})
}
