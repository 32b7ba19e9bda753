package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/mq"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrProductNotFound = errors.New("product not found")
	errReviewConflict  = errors.New("review conflict: too many concurrent submissions")
)

const maxReviewRetries = 5

// reviewStore is the minimal product access the append loop needs. The
// compare-and-append must be atomic: it succeeds only when the review count
// still matches the snapshot the new rating was computed from.
type reviewStore interface {
	Fetch(ctx context.Context, productID string) (*models.Product, error)
	CompareAndAppend(ctx context.Context, productID string, expectedReviews int, review models.Review, rating float64) (bool, error)
}

type mongoReviewStore struct {
	coll *mongo.Collection
}

func (s mongoReviewStore) Fetch(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"productid": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s mongoReviewStore) CompareAndAppend(ctx context.Context, productID string, expectedReviews int, review models.Review, rating float64) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"productid": productID, "numReviews": expectedReviews},
		bson.M{
			"$push": bson.M{"reviews": review},
			"$set": bson.M{
				"rating":     rating,
				"numReviews": expectedReviews + 1,
				"updatedAt":  time.Now(),
			},
		})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// meanRating is the exact arithmetic mean the rating invariant demands.
func meanRating(reviews []models.Review, extra models.Review) float64 {
	sum := extra.Rating
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews)+1)
}

// appendReview retries the snapshot-compute-append cycle until the append
// lands on an unchanged review count, so concurrent submissions never lose an
// update.
func appendReview(ctx context.Context, store reviewStore, productID string, review models.Review) (*models.Product, error) {
	for attempt := 0; attempt < maxReviewRetries; attempt++ {
		product, err := store.Fetch(ctx, productID)
		if err != nil {
			return nil, err
		}

		rating := meanRating(product.Reviews, review)
		ok, err := store.CompareAndAppend(ctx, productID, product.NumReviews, review, rating)
		if err != nil {
			return nil, err
		}
		if ok {
			product.Reviews = append(product.Reviews, review)
			product.NumReviews++
			product.Rating = rating
			return product, nil
		}
	}
	return nil, errReviewConflict
}

type reviewPayload struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// AddReview appends a review and recomputes the derived rating fields in the
// same write.
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Rating < 1 || body.Rating > 5 || body.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	review := models.Review{
		Name:      caller.Name,
		Rating:    body.Rating,
		Comment:   body.Comment,
		CreatedAt: time.Now(),
	}

	productID := ps.ByName("id")
	product, err := appendReview(ctx, mongoReviewStore{coll: db.ProductCollection}, productID, review)
	if err == ErrProductNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product Not Found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	go mq.Emit(context.Background(), "review-added", models.Index{
		EntityType: "review", Method: "POST", ItemId: productID, ItemType: "product",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":    "Review Created",
		"review":     review,
		"numReviews": product.NumReviews,
		"rating":     product.Rating,
	})
}
