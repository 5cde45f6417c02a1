package routes

import (
	"shoplink/handlers"
	"shoplink/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)

	// --- Public Shop Routes (customer browsing) ---
	shops := api.Group("/shops")
	shops.Get("/", handlers.HandleListShops)
	shops.Get("/:shopId", handlers.HandleGetShopByID)
	shops.Get("/:shopId/reviews", handlers.HandleListReviews)
	shops.Post("/:shopId/reviews", middleware.JWTMiddleware, middleware.CustomerRequired, handlers.HandleCreateReview)

	// --- Shopkeeper Routes ---
	keeper := api.Group("/shopkeeper", middleware.JWTMiddleware, middleware.ShopkeeperRequired)

	keeper.Get("/dashboard", handlers.HandleGetShopDashboard)
	keeper.Put("/shop", handlers.HandleUpdateShopSettings)

	keeper.Get("/products", handlers.HandleListOwnProducts)
	keeper.Post("/products", handlers.HandleCreateProduct)
	keeper.Put("/products/:productId", handlers.HandleUpdateProduct)
	keeper.Delete("/products/:productId", handlers.HandleDeleteProduct)

	keeper.Get("/sales", handlers.HandleListSales)
	keeper.Post("/sales", handlers.HandleLogSale)
	keeper.Post("/sales/sync", handlers.HandleSyncOfflineSales)

	keeper.Get("/forecast", handlers.HandleGetWeeklyForecast)
}
