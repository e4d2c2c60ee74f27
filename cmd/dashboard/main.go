package main

import (
	"context"
	"log"
	"os"
	"time"

	"pizzadash/internal/api"
	"pizzadash/internal/catalog"
	"pizzadash/internal/category"
	"pizzadash/internal/middleware"
	"pizzadash/internal/order"
	"pizzadash/internal/product"
	"pizzadash/internal/sales"
	"pizzadash/internal/session"
	"pizzadash/internal/size"
	"pizzadash/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"API_BASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	bindAddr := os.Getenv("BIND_ADDR")
	if bindAddr == "" {
		bindAddr = ":3001"
	}

	// ───────────────────────── BACKEND API ─────────────────────────
	client := api.NewClient(os.Getenv("API_BASE_URL"))

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalog.NewAPIBackend(client))
	sessionService := session.NewService(client)
	sizeService := size.NewService(size.NewAPIBackend(client))
	categoryService := category.NewService(category.NewAPIBackend(client), size.NewAPIBackend(client))
	productService := product.NewService(product.NewAPIBackend(client), catalogService, r2Client)
	salesService := sales.NewService(sales.NewAPIBackend(client))

	// shared order state, injected once at the composition root
	drafts := order.NewDraftStore()
	openOrders := order.NewOpenOrders()
	orderService := order.NewService(order.NewAPIBackend(client), drafts, openOrders)

	// ───────────────────────── HANDLERS ─────────────────────────
	sessionHandler := session.NewHandler(sessionService)
	sizeHandler := size.NewHandler(sizeService)
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(productService, catalogService)
	orderHandler := order.NewHandler(orderService, catalogService)
	salesHandler := sales.NewHandler(salesService)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.POST("/session", sessionHandler.Login)
	r.POST("/session/logout", sessionHandler.Logout)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── DASHBOARD ROUTES ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.SessionMiddleware())
	{
		// sizes
		authed.GET("/sizes", sizeHandler.List)
		authed.POST("/size", sizeHandler.Create)
		authed.POST("/size/defaults", sizeHandler.CreateDefaults)
		authed.DELETE("/size", sizeHandler.Delete)

		// categories
		authed.GET("/category", categoryHandler.List)
		authed.POST("/category", categoryHandler.Create)
		authed.DELETE("/category", categoryHandler.Delete)

		// products
		authed.GET("/products", productHandler.ListGrouped)
		authed.GET("/category/product", productHandler.ListByCategory)
		authed.POST("/product", productHandler.Create)
		authed.DELETE("/product", productHandler.Delete)

		// order-composer catalog view
		authed.GET("/catalog", productHandler.ListByCategory)

		// order composer
		authed.POST("/order/draft", orderHandler.CreateDraft)
		authed.GET("/order/draft/:id", orderHandler.GetDraft)
		authed.DELETE("/order/draft/:id", orderHandler.DiscardDraft)
		authed.POST("/order/draft/:id/size", orderHandler.SelectSize)
		authed.POST("/order/draft/:id/halfhalf", orderHandler.ToggleHalfHalf)
		authed.POST("/order/draft/:id/second", orderHandler.SelectSecondFlavor)
		authed.POST("/order/draft/:id/item", orderHandler.AddItem)
		authed.DELETE("/order/draft/:id/item", orderHandler.RemoveItem)
		authed.POST("/order/draft/:id/submit", orderHandler.Submit)

		// open orders
		authed.GET("/order/detail", orderHandler.Detail)
		authed.PUT("/order/finish", orderHandler.Finish)
		authed.PUT("/order/finish-batch", orderHandler.FinishBatch)

		// sales
		authed.GET("/order/sales", salesHandler.Get)
	}

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 Dashboard running at http://localhost%s", bindAddr)
	if err := r.Run(bindAddr); err != nil {
		log.Fatal("server stopped:", err)
	}
}
