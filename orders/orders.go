package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type orderPayload struct {
	OrderItems      []models.OrderItem `json:"orderItems"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	ItemsPrice      float64            `json:"itemsPrice"`
	ShippingPrice   float64            `json:"shippingPrice"`
	TaxPrice        float64            `json:"taxPrice"`
	TotalPrice      float64            `json:"totalPrice"`
}

// CreateOrder records a checkout. Line items are frozen at creation; the
// submitted totals are revalidated against them before anything is stored.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body orderPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	order := models.Order{
		OrderID:         utils.GetUUID(),
		OrderItems:      body.OrderItems,
		ShippingAddress: body.ShippingAddress,
		PaymentMethod:   body.PaymentMethod,
		ItemsPrice:      body.ItemsPrice,
		ShippingPrice:   body.ShippingPrice,
		TaxPrice:        body.TaxPrice,
		TotalPrice:      body.TotalPrice,
		UserID:          caller.UserID,
		CreatedAt:       time.Now(),
	}

	if err := ValidateTotals(order); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "New Order Created", "order": order})
}

// GetMyOrders lists the caller's own orders.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	orders, err := utils.FindAndDecode[models.Order](ctx, db.OrderCollection, bson.M{"userid": caller.UserID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("id")}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order Not Found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// DeleteOrder removes an order record.
func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.OrderCollection.DeleteOne(ctx, bson.M{"orderid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order Not Found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order Deleted"})
}
