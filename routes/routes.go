package routes

import (
	"vypar/blogs"
	"vypar/middleware"
	"vypar/orders"
	"vypar/products"
	"vypar/ratelim"
	"vypar/sellers"

	"github.com/julienschmidt/httprouter"
)

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/search", rl.Limit(products.SearchProducts))
	router.GET("/api/products/categories", products.GetCategories)
	router.GET("/api/products/seller-admin", middleware.RequireSellerOrAdmin(products.SellerAdminProducts))
	router.GET("/api/products/slug/:slug", products.GetProductBySlug)
	router.GET("/api/products/product/:id", products.GetProduct)
	router.POST("/api/products", middleware.RequireSeller(products.CreateSampleProduct))
	router.POST("/api/products/new", middleware.RequireSeller(products.CreateProduct))
	router.GET("/api/products/edit/:id", middleware.RequireSeller(products.GetEditProduct))
	router.POST("/api/products/edit/:id", middleware.RequireSeller(products.EditProduct))
	router.DELETE("/api/products/product/:id", middleware.RequireSellerOrAdmin(products.DeleteProduct))
	router.POST("/api/products/product/:id/reviews", middleware.Authenticate(products.AddReview))
}

func AddBlogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/blogs", blogs.GetBlogs)
	router.GET("/api/blogs/blog/:slug", blogs.GetBlogBySlug)
	router.GET("/api/blogs/my/all", middleware.Authenticate(blogs.GetMyBlogs))
	router.GET("/api/blogs/search/blogs", rl.Limit(blogs.SearchBlogs))
	router.POST("/api/blogs", middleware.Authenticate(blogs.CreateBlog))
	router.GET("/api/blogs/edit/:id", middleware.Authenticate(blogs.GetEditBlog))
	router.POST("/api/blogs/edit/:id", middleware.Authenticate(blogs.EditBlog))
	router.PUT("/api/blogs/like/:id", blogs.LikeBlog)
	router.POST("/api/blogs/comment/:id", middleware.Authenticate(blogs.CommentBlog))
	router.DELETE("/api/blogs/:id", middleware.Authenticate(blogs.DeleteBlog))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders", middleware.RequireSeller(orders.ListSellerOrders))
	router.GET("/api/orders/admin", middleware.RequireAdmin(orders.ListAdminOrders))
	router.POST("/api/orders", middleware.Authenticate(orders.CreateOrder))
	router.GET("/api/orders/mine", middleware.Authenticate(orders.GetMyOrders))
	router.GET("/api/orders/summary/seller", middleware.RequireSeller(orders.SellerSummary))
	router.GET("/api/orders/summary/admin", middleware.RequireAdmin(orders.AdminSummary))
	router.GET("/api/orders/order/:id", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/order/:id/deliverable", middleware.RequireSeller(orders.Deliverable))
	router.GET("/api/orders/order/:id/invoice", middleware.Authenticate(orders.InvoiceOrder))
	router.PUT("/api/orders/order/:id/deliver", middleware.RequireSeller(orders.DeliverOrder))
	router.PUT("/api/orders/order/:id/pay", middleware.Authenticate(orders.PayOrder))
	router.DELETE("/api/orders/order/:id", middleware.RequireSeller(orders.DeleteOrder))
}

func AddSellerRoutes(router *httprouter.Router) {
	router.GET("/api/sellers", middleware.RequireAdmin(sellers.ListSellers))
	router.POST("/api/sellers/new", middleware.Authenticate(sellers.ApplySeller))
	router.GET("/api/sellers/user/:id", middleware.Authenticate(sellers.GetSellerByUser))
	router.PUT("/api/sellers/verify/:id", middleware.RequireAdmin(sellers.VerifySeller))
	router.DELETE("/api/sellers/:id", middleware.RequireAdmin(sellers.DeleteSeller))
}
