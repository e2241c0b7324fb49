package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"deoghar-kitab/config"
	"deoghar-kitab/handlers"
	"deoghar-kitab/helper"
	"deoghar-kitab/middleware"
	"deoghar-kitab/models"
	"deoghar-kitab/repositories"
	"deoghar-kitab/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"gopkg.in/go-playground/validator.v9"
	enTranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Validator with english field-error translations
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Fatal("Failed to register validator translations: ", err)
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: trans}

	// Optional Redis cache for the public book listing
	var bookCache *services.BookCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		bookCache = services.NewBookCache(addr, os.Getenv("REDIS_PASSWORD"), 5*time.Minute)
		log.Printf("Book listing cache enabled (%s)", addr)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	bookService := services.NewBookService(bookRepo, userRepo, bookCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	bookHandler := handlers.NewBookHandler(bookService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		// Public book routes
		books := api.Group("/books")
		{
			books.GET("", bookHandler.GetBooks)
			books.GET("/seller/:sellerId", bookHandler.GetSellerBooks)
			books.GET("/:id", bookHandler.GetBook)
		}

		// Seller/admin book routes
		booksAuth := api.Group("/books")
		booksAuth.Use(middleware.AuthMiddleware())
		{
			booksAuth.POST("", bookHandler.CreateBook)
			booksAuth.PUT("/:id", bookHandler.UpdateBook)
			booksAuth.PUT("/:id/status", bookHandler.UpdateStatus)
			booksAuth.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), bookHandler.DeleteBook)
		}

		// Public user routes
		users := api.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/login", authHandler.Login)
		}

		// Authenticated user routes
		usersAuth := api.Group("/users")
		usersAuth.Use(middleware.AuthMiddleware())
		{
			usersAuth.GET("", middleware.RequireRole(models.RoleAdmin), userHandler.GetUsers)
			usersAuth.GET("/pending-sellers", middleware.RequireRole(models.RoleAdmin), userHandler.GetPendingSellers)
			usersAuth.GET("/:id", userHandler.GetUser)
			usersAuth.PUT("/:id", userHandler.UpdateUser)
			usersAuth.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), userHandler.DeleteUser)

			usersAuth.PUT("/:id/request-seller", userHandler.RequestSeller)
			usersAuth.PUT("/:id/approve-seller", middleware.RequireRole(models.RoleAdmin), userHandler.ApproveSeller)
			usersAuth.PUT("/:id/reject-seller", middleware.RequireRole(models.RoleAdmin), userHandler.RejectSeller)
			usersAuth.PUT("/:id/cancel-seller-request", userHandler.CancelSellerRequest)
		}

		// Authenticated profile
		profile := api.Group("/profile")
		profile.Use(middleware.AuthMiddleware())
		{
			profile.GET("", authHandler.GetProfile)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
