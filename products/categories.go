package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"vypar/db"
	"vypar/rdx"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const categoriesCacheKey = "constants:categories"

// GetCategories returns the distinct categories, brands, cities and blog
// categories the filter menus are built from. The payload changes only on
// product/blog writes, so it is cached in Redis and invalidated on mutation.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet(categoriesCacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := distinctStrings(ctx, db.ProductCollection, "category")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	brands, err := distinctStrings(ctx, db.ProductCollection, "brand")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load brands")
		return
	}
	cityList, err := distinctStrings(ctx, db.ProductCollection, "origin")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load cities")
		return
	}
	blogCategories, err := distinctStrings(ctx, db.BlogCollection, "category")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load blog categories")
		return
	}
	sort.Strings(cityList)

	payload := utils.M{
		"categories":     categories,
		"brands":         brands,
		"cityList":       cityList,
		"blogCategories": blogCategories,
	}

	if data, err := json.Marshal(payload); err == nil {
		if err := rdx.RdxSet(categoriesCacheKey, string(data)); err != nil {
			log.Printf("categories cache set failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, payload)
}

func distinctStrings(ctx context.Context, coll *mongo.Collection, field string) ([]string, error) {
	raw, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func invalidateCategoryCache() {
	if err := rdx.RdxDel(categoriesCacheKey); err != nil {
		log.Printf("categories cache invalidation failed: %v", err)
	}
}
