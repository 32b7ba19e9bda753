package blogs

import (
	"context"
	"net/http"
	"time"

	"vypar/db"
	"vypar/models"
	"vypar/query"
	"vypar/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchBlogs matches the term against title, topic titles and category at
// once (OR), then sorts and paginates. Count and fetch share one filter.
func SearchBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := query.BuildBlogFilter(q.Get("query"))
	page := query.ParsePage(q.Get("page"), q.Get("pageSize"))
	sort := query.SortOrder(q.Get("order"))

	opts := options.Find().SetSort(sort).SetSkip(page.Skip()).SetLimit(page.Limit())
	blogs, err := utils.FindAndDecode[models.Blog](ctx, db.BlogCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search blogs")
		return
	}

	count, err := db.BlogCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count blogs")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"blogs":      blogs,
		"countBlogs": count,
		"page":       page.Number,
		"pages":      query.Pages(count, page.Size),
	})
}
