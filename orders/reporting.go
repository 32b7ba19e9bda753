package orders

import (
	"context"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ListSellerOrders returns one row per line item whose product belongs to the
// calling seller.
func ListSellerOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	caller := middleware.CallerFromRequest(r)
	listItemRows(w, r, caller.SellerID)
}

// ListAdminOrders returns every line-item row, unscoped.
func ListAdminOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listItemRows(w, r, "")
}

func listItemRows(w http.ResponseWriter, r *http.Request, sellerID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := utils.AggregateAndDecode[models.OrderItemRow](ctx, db.OrderCollection, itemRowsWithUser(sellerID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// SellerSummary aggregates the seller's slice of the item-product join three
// ways: per buyer, per calendar day, per product category.
func SellerSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	caller := middleware.CallerFromRequest(r)
	summary(w, r, caller.SellerID)
}

// AdminSummary is the same three aggregates with no seller scope.
func AdminSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary(w, r, "")
}

func summary(w http.ResponseWriter, r *http.Request, sellerID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := utils.AggregateAndDecode[models.UserSales](ctx, db.OrderCollection, userSalesPipeline(sellerID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate sales by user")
		return
	}
	dailyOrders, err := utils.AggregateAndDecode[models.DailySales](ctx, db.OrderCollection, dailySalesPipeline(sellerID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate daily sales")
		return
	}
	productCategories, err := utils.AggregateAndDecode[models.CategoryCount](ctx, db.OrderCollection, categoryCountPipeline(sellerID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate categories")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders":            orders,
		"dailyOrders":       dailyOrders,
		"productCategories": productCategories,
	})
}

// Deliverable reports whether the calling seller may mark the order
// delivered: true iff at least one line item's product is theirs.
func Deliverable(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("id")}).Decode(&order); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"isAllowed": false})
		return
	}

	products, err := orderProducts(ctx, order)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"isAllowed": eligibleSeller(products, caller.SellerID)})
}

// orderProducts loads the products behind an order's line items.
func orderProducts(ctx context.Context, order models.Order) ([]models.Product, error) {
	ids := make([]string, 0, len(order.OrderItems))
	for _, it := range order.OrderItems {
		ids = append(ids, it.ProductID)
	}
	return utils.FindAndDecode[models.Product](ctx, db.ProductCollection, bson.M{"productid": bson.M{"$in": ids}})
}
