package blogs

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
)

// LikeBlog bumps the like counter. It is a plain counter, not a per-user
// toggle, and the increment is atomic in the store.
func LikeBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	blogID := ps.ByName("id")
	res, err := db.BlogCollection.UpdateOne(ctx, bson.M{"blogid": blogID}, bson.M{"$inc": bson.M{"likeCount": 1}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var blog models.Blog
	if err := db.BlogCollection.FindOne(ctx, bson.M{"blogid": blogID}).Decode(&blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, blog)
}

// CommentBlog appends a comment with a snapshot of the author's display name.
func CommentBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Comment) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	comment := models.BlogComment{
		UserID:    caller.UserID,
		Name:      caller.Name,
		Comment:   body.Comment,
		CreatedAt: time.Now(),
	}

	blogID := ps.ByName("id")
	res, err := db.BlogCollection.UpdateOne(ctx, bson.M{"blogid": blogID}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "commented failed")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var blog models.Blog
	if err := db.BlogCollection.FindOne(ctx, bson.M{"blogid": blogID}).Decode(&blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "commented failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}
