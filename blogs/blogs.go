package blogs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vypar/db"
	"vypar/middleware"
	"vypar/models"
	"vypar/mq"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultBlogImage = "https://i.ibb.co/ZXwTfW2/8.jpg"

// GetBlogs lists every blog as a light projection for the index page.
func GetBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"blogid": 1, "title": 1, "description": 1, "slug": 1, "image": 1, "createdAt": 1, "likeCount": 1,
	})
	blogs, err := utils.FindAndDecode[models.BlogSummary](ctx, db.BlogCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

func GetBlogBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var blog models.Blog
	if err := db.BlogCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&blog); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}

// GetMyBlogs lists the caller's own blogs.
func GetMyBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	blogs, err := utils.FindAndDecode[models.Blog](ctx, db.BlogCollection, bson.M{"userid": caller.UserID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

type blogPayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Topics      []models.Topic `json:"topics"`
}

// CreateBlog creates a post owned by the caller. The slug derives from the
// title plus a timestamp so two posts with the same title stay addressable.
func CreateBlog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body blogPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog data")
		return
	}

	image := body.Image
	if image == "" {
		image = defaultBlogImage
	}
	if body.Topics == nil {
		body.Topics = []models.Topic{}
	}

	now := time.Now()
	blog := models.Blog{
		BlogID:      utils.GetUUID(),
		UserID:      caller.UserID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Image:       image,
		Slug:        utils.Slugify(body.Title),
		Topics:      body.Topics,
		Comments:    []models.BlogComment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.BlogCollection.InsertOne(ctx, blog); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Failed to create new blog, please try again")
		return
	}

	go mq.Emit(context.Background(), "blog-added", models.Index{EntityType: "blog", EntityId: blog.BlogID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"blog": blog, "message": "successfully created"})
}

// GetEditBlog returns a blog for its author's edit form.
func GetEditBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	var blog models.Blog
	err := db.BlogCollection.FindOne(ctx, bson.M{"blogid": ps.ByName("id"), "userid": caller.UserID}).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "You are not allowed to edit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}

// EditBlog replaces the editable fields wholesale, topics included.
func EditBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)

	var body blogPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog data")
		return
	}
	if body.Topics == nil {
		body.Topics = []models.Topic{}
	}

	res := db.BlogCollection.FindOneAndUpdate(ctx,
		bson.M{"blogid": ps.ByName("id"), "userid": caller.UserID},
		bson.M{"$set": bson.M{
			"title":       body.Title,
			"description": body.Description,
			"image":       body.Image,
			"topics":      body.Topics,
			"updatedAt":   time.Now(),
		}},
	)
	if res.Err() != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "You are not allowed to edit")
		return
	}

	var blog models.Blog
	if err := db.BlogCollection.FindOne(ctx, bson.M{"blogid": ps.ByName("id")}).Decode(&blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "some error occur, please try again")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"blog": blog, "message": "updated created"})
}

// DeleteBlog removes a blog, author-scoped.
func DeleteBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFromRequest(r)
	res, err := db.BlogCollection.DeleteOne(ctx, bson.M{"blogid": ps.ByName("id"), "userid": caller.UserID})
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "deletion failed")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "You are not allowed to delete")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Blog deleted successfully"})
}
