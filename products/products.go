package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/mq"
	"vypar/query"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProducts lists the catalog, optionally narrowed to one city. The default
// city sentinel means unfiltered.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter, err := query.BuildProductFilter(query.ProductParams{City: r.URL.Query().Get("city")})
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func GetProductBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateSampleProduct inserts a placeholder listing the seller edits
// afterwards. Origin comes from the seller's registered city.
func CreateSampleProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	seller, err := fetchSeller(ctx, caller.SellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "creation failed, please try again")
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:   utils.GetUUID(),
		Name:        fmt.Sprintf("sample name %d", now.UnixMilli()),
		Slug:        fmt.Sprintf("sample-name-%d", now.UnixMilli()),
		Image:       "/images/p1.jpg",
		Category:    "sample category",
		Brand:       "sample brand",
		Description: "sample description",
		Reviews:     []models.Review{},
		SellerID:    seller.SellerID,
		Origin:      seller.Address.City,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "creation failed, please try again")
		return
	}

	invalidateCategoryCache()
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Product Created", "product": product})
}

type productPayload struct {
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
	Brand        string   `json:"brand"`
	CountInStock int      `json:"countInStock"`
	Description  string   `json:"description"`
}

// CreateProduct creates a full listing from the seller's form.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	seller, err := fetchSeller(ctx, caller.SellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Failed to create")
		return
	}

	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" || body.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:    utils.GetUUID(),
		Name:         body.Name,
		Slug:         body.Slug,
		Price:        body.Price,
		Image:        body.Image,
		Images:       body.Images,
		Category:     body.Category,
		Brand:        body.Brand,
		CountInStock: body.CountInStock,
		Description:  body.Description,
		Reviews:      []models.Review{},
		SellerID:     seller.SellerID,
		Origin:       seller.Address.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Failed to create")
		return
	}

	invalidateCategoryCache()
	go mq.Emit(context.Background(), "product-added", models.Index{EntityType: "product", EntityId: product.ProductID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"product": product, "message": "Product Created successfully"})
}

// GetEditProduct returns a listing for the edit form, scoped to its owner.
func GetEditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{
		"productid": ps.ByName("id"),
		"sellerid":  caller.SellerID,
	}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// EditProduct updates an owner's listing in place.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":         body.Name,
		"slug":         body.Slug,
		"price":        body.Price,
		"image":        body.Image,
		"images":       body.Images,
		"category":     body.Category,
		"brand":        body.Brand,
		"countInStock": body.CountInStock,
		"description":  body.Description,
		"updatedAt":    time.Now(),
	}}

	res := db.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": ps.ByName("id"), "sellerid": caller.SellerID},
		update,
	)
	if res.Err() != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reload product")
		return
	}

	invalidateCategoryCache()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"product": product, "message": "Product Updated"})
}

// DeleteProduct removes a listing. The route is gated to sellers and admins.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}

	invalidateCategoryCache()
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Product Deleted"})
}

func fetchSeller(ctx context.Context, sellerID string) (*models.Seller, error) {
	var seller models.Seller
	err := db.SellerCollection.FindOne(ctx, bson.M{"sellerid": sellerID}).Decode(&seller)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("seller %s not found", sellerID)
		}
		return nil, err
	}
	return &seller, nil
}
