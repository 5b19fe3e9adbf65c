package routes

import (
	"net/http"

	"kirana/addresses"
	"kirana/cart"
	"kirana/categories"
	"kirana/orders"
	"kirana/products"
	"kirana/ratelim"
	"kirana/search"
	"kirana/users"
	"kirana/wishlist"

	"github.com/julienschmidt/httprouter"
)

// RoutesWrapper registers every resource surface on the router.
func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter, cartH *cart.Handler, wishH *wishlist.Handler) {
	AddCategoryRoutes(router, rl)
	AddProductRoutes(router, rl)
	AddUserRoutes(router, rl)
	AddAddressRoutes(router, rl)
	AddCartRoutes(router, rl, cartH)
	AddWishlistRoutes(router, rl, wishH)
	AddOrderRoutes(router, rl)
	AddSearchRoutes(router)
	AddStaticRoutes(router)
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddCategoryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/categories", categories.GetCategories)
	router.POST("/api/categories", rl.Limit(categories.CreateCategory))
	router.GET("/api/categories/:id", categories.GetCategoryByID)
	router.PUT("/api/categories/:id", rl.Limit(categories.UpdateCategory))
	router.DELETE("/api/categories/:id", rl.Limit(categories.DeleteCategory))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.POST("/api/products", rl.Limit(products.CreateProduct))
	router.GET("/api/products/:id", products.GetProductByID)
	// /api/products/search/:title lands on the :id/:title route; the
	// handler dispatches on the literal "search" segment.
	router.GET("/api/products/:id/:title", products.GetProductOrSearch)
	router.PUT("/api/products/:id", rl.Limit(products.UpdateProduct))
	router.DELETE("/api/products/:id", rl.Limit(products.DeleteProduct))
	router.POST("/api/products/:id/image", rl.Limit(products.UploadProductImage))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/users", rl.Limit(users.CreateUser))
	router.GET("/api/users", users.GetUsers)
	router.GET("/api/users/:id", users.GetUserByID)
	router.GET("/api/users/:id/addresses", users.ListAddresses)
}

func AddAddressRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/addresses", rl.Limit(addresses.CreateAddress))
	router.GET("/api/addresses", addresses.GetAddresses)
	router.GET("/api/addresses/:id", addresses.GetAddressByID)
	router.PUT("/api/addresses/:id", rl.Limit(addresses.UpdateAddress))
	router.DELETE("/api/addresses/:id", rl.Limit(addresses.DeleteAddress))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/carts/:userId", h.GetCart)
	router.POST("/api/carts/:userId", rl.Limit(h.AddToCart))
	router.DELETE("/api/carts/:userId", rl.Limit(h.RemoveFromCart))
	router.PUT("/api/carts/:userId/increase", rl.Limit(h.IncreaseQuantity))
	router.PUT("/api/carts/:userId/decrease", rl.Limit(h.DecreaseQuantity))
	router.PUT("/api/carts/:userId/move/wishlist", rl.Limit(h.MoveToWishlist))
}

func AddWishlistRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *wishlist.Handler) {
	router.GET("/api/wishlists/:userId", h.GetWishlist)
	router.POST("/api/wishlists/:userId", rl.Limit(h.AddToWishlist))
	router.DELETE("/api/wishlists/:userId", rl.Limit(h.RemoveFromWishlist))
	router.PUT("/api/wishlists/:userId/move/cart", rl.Limit(h.MoveToCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(orders.CreateOrder))
	router.GET("/api/orders", orders.GetOrders)
	router.GET("/api/orders/:orderId/invoice", orders.PrintInvoice)
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/search/products", search.QueryProducts)
}
