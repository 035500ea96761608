package routes

import (
	"novelnook/admin"
	"novelnook/auth"
	"novelnook/cart"
	"novelnook/catalog"
	"novelnook/middleware"
	"novelnook/orders"
	"novelnook/profile"
	"novelnook/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handlers) {
	router.GET("/api/books", middleware.OptionalAuth(h.GetBooks))
	router.GET("/api/books/:bookid", middleware.OptionalAuth(h.GetBook))
	router.GET("/api/categories", h.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handlers) {
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
	router.POST("/api/cart", middleware.Authenticate(h.AddToCart))
	router.PUT("/api/cart/:bookid", middleware.Authenticate(h.UpdateQuantity))
	router.DELETE("/api/cart/:bookid", middleware.Authenticate(h.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(h.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(h.Checkout)))
	router.GET("/api/orders", middleware.Authenticate(h.GetMyOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(h.GetOrder))
	router.POST("/api/orders/:orderid/cancel", middleware.Authenticate(h.CancelOrder))
}

func AddAdminRoutes(router *httprouter.Router, h *admin.Handlers) {
	router.GET("/api/admin/orders", middleware.Authenticate(h.GetAllOrders))
	router.PATCH("/api/admin/orders/:orderid/status", middleware.Authenticate(h.UpdateOrderStatus))
	router.GET("/api/admin/orders/:orderid/invoice", middleware.Authenticate(h.PrintInvoice))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PATCH("/api/profile", middleware.Authenticate(profile.UpdateProfile))
}
