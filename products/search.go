package products

import (
	"context"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/query"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchProducts is the faceted storefront search. Count and fetch run with
// the identical filter document so the page metadata never skews from the
// returned items.
func SearchProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter, err := query.BuildProductFilter(query.ProductParams{
		Query:    q.Get("query"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Price:    q.Get("price"),
		Rating:   q.Get("rating"),
		City:     q.Get("city"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page := query.ParsePage(q.Get("page"), q.Get("pageSize"))
	sort := query.SortOrder(q.Get("order"))

	opts := options.Find().SetSort(sort).SetSkip(page.Skip()).SetLimit(page.Limit())
	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}

	count, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products":      products,
		"countProducts": count,
		"page":          page.Number,
		"pages":         query.Pages(count, page.Size),
	})
}

// SellerAdminProducts is the dashboard listing: sellers see their own
// listings, admins see everything.
func SellerAdminProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	filter := bson.M{}
	if caller.IsSeller() {
		filter["sellerid"] = caller.SellerID
	}

	page := query.ParsePage(r.URL.Query().Get("page"), r.URL.Query().Get("pageSize"))
	opts := options.Find().SetSkip(page.Skip()).SetLimit(page.Limit())

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Some error occurs, try again")
		return
	}

	count, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Some error occurs, try again")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products":      products,
		"countProducts": count,
		"page":          page.Number,
		"pages":         query.Pages(count, page.Size),
	})
}
