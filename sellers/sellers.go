package sellers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListSellers returns every seller profile, newest first, for the admin
// moderation screen.
func ListSellers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	sellers, err := utils.FindAndDecode[models.Seller](ctx, db.SellerCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sellers")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sellers)
}

type sellerPayload struct {
	ProductCategories string         `json:"productCategories"`
	Address           models.Address `json:"address"`
}

// normalizeCategories cleans the free-text category list an applicant types:
// trimmed, lowercased, deduplicated, comma-joined.
func normalizeCategories(raw string) string {
	return strings.Join(utils.SplitTags(raw), ",")
}

// ApplySeller files a seller application for the calling user. One profile
// per user: the unique index on userid turns a second application into a
// conflict instead of a silent duplicate.
func ApplySeller(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body sellerPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid seller data")
		return
	}

	now := time.Now()
	seller := models.Seller{
		SellerID:          utils.GetUUID(),
		UserID:            caller.UserID,
		ProductCategories: normalizeCategories(body.ProductCategories),
		Address:           body.Address,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := db.SellerCollection.InsertOne(ctx, seller); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "You already have a seller application")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Seller request sent to Admin, will notify you once verified",
	})
}

// GetSellerByUser returns the seller profile attached to a user id.
func GetSellerByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var seller models.Seller
	err := db.SellerCollection.FindOne(ctx, bson.M{"userid": ps.ByName("id")}).Decode(&seller)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized,
			"You haven't yet applied for application or your application may have been rejected")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, seller)
}

// VerifySeller is the admin approval: the profile becomes verified and the
// user gains the seller role in the same request.
func VerifySeller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sellerID := ps.ByName("id")
	var seller models.Seller
	if err := db.SellerCollection.FindOne(ctx, bson.M{"sellerid": sellerID}).Decode(&seller); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Seller Not Found")
		return
	}

	_, err := db.SellerCollection.UpdateOne(ctx, bson.M{"sellerid": sellerID},
		bson.M{"$set": bson.M{"isVerified": true, "updatedAt": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Request failed, try again")
		return
	}
	_, err = db.UserCollection.UpdateOne(ctx, bson.M{"userid": seller.UserID},
		bson.M{"$set": bson.M{"isSeller": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Request failed, try again")
		return
	}

	seller.IsVerified = true
	utils.RespondWithJSON(w, http.StatusCreated, seller)
}

// DeleteSeller removes a profile and drops the user's seller role.
func DeleteSeller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sellerID := ps.ByName("id")
	var seller models.Seller
	if err := db.SellerCollection.FindOne(ctx, bson.M{"sellerid": sellerID}).Decode(&seller); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Seller Not Found")
		return
	}

	if _, err := db.SellerCollection.DeleteOne(ctx, bson.M{"sellerid": sellerID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete seller")
		return
	}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": seller.UserID},
		bson.M{"$set": bson.M{"isSeller": false}}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "deleted successfully"})
}
