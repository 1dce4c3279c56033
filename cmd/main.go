package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bistroboss/bistro-api/docs" // Import generated docs
	"github.com/bistroboss/bistro-api/internal/auth"
	"github.com/bistroboss/bistro-api/internal/config"
	"github.com/bistroboss/bistro-api/internal/controllers"
	"github.com/bistroboss/bistro-api/internal/database"
	"github.com/bistroboss/bistro-api/internal/middleware"
	"github.com/bistroboss/bistro-api/internal/payments"
	"github.com/bistroboss/bistro-api/internal/services"
)

var (
	client        *mongo.Client
	configuration *config.Config

	userService   services.UserService
	menuService   services.MenuService
	reviewService services.ReviewService
	cartService   services.CartService

	authController    *controllers.AuthController
	userController    *controllers.UserController
	menuController    *controllers.MenuController
	reviewController  *controllers.ReviewController
	cartController    *controllers.CartController
	paymentController *controllers.PaymentController
)

// @title Bistro API
// @version 1.0
// @description Restaurant ordering API: menu, reviews, carts, users and payment intents
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)
	defer database.Disconnect(context.Background(), client)

	// Initialize services and controllers
	userService = services.NewUserService(db)
	menuService = services.NewMenuService(db)
	reviewService = services.NewReviewService(db)
	cartService = services.NewCartService(db)

	issuer := auth.NewTokenIssuer(configuration.AccessTokenSecret, auth.DefaultTokenTTL)
	gateway := payments.NewStripeGateway(configuration.StripeSecretKey)

	authController = controllers.NewAuthController(issuer)
	userController = controllers.NewUserController(userService)
	menuController = controllers.NewMenuController(menuService)
	reviewController = controllers.NewReviewController(reviewService)
	cartController = controllers.NewCartController(cartService)
	paymentController = controllers.NewPaymentController(gateway)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase connects the process-wide MongoDB client and returns the
// application database handle shared by every service.
func setupDatabase(conf *config.Config) *mongo.Database {
	var err error
	client, err = database.Connect(context.Background(), database.DatabaseConfig{
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Host:     conf.DBHost,
		Name:     conf.DBName,
		URI:      config.GetEnvWithDefault("MONGO_URI", ""),
	})
	checkPanicErr(err)
	return client.Database(conf.DBName)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router. Each route declares
// its guard chain statically: none, token guard, or token guard + admin.
func setupRoutes(router *gin.Engine) {
	jwtSecret := []byte(configuration.AccessTokenSecret)
	verifyToken := middleware.JWTAuth(jwtSecret)
	verifyAdmin := middleware.RequireAdmin(userService)

	// Liveness endpoint
	router.GET("/", livenessHandler)

	// Token issuance
	router.POST("/jwt", authController.CreateToken)

	// Users and roles
	router.POST("/users", userController.Register)
	router.GET("/allusers/checkAdmin/:email", verifyToken, userController.CheckAdmin)
	router.PATCH("/allusers/makeAdmin/:id", verifyToken, verifyAdmin, userController.MakeAdmin)
	router.GET("/allusers", verifyToken, verifyAdmin, userController.GetAllUsers)
	router.DELETE("/allusers/:id", verifyToken, verifyAdmin, userController.DeleteUser)

	// Menu
	router.GET("/menu", menuController.GetAllItems)
	router.GET("/menu/:id", menuController.GetItemByID)
	router.POST("/menu", verifyToken, verifyAdmin, menuController.CreateItem)
	router.PATCH("/menu/:id", verifyToken, verifyAdmin, menuController.UpdateItem)
	router.DELETE("/menu/:id", verifyToken, verifyAdmin, menuController.DeleteItem)

	// Reviews
	router.GET("/reviews", reviewController.GetAllReviews)

	// Cart
	router.GET("/getallCard", cartController.GetEntries)
	router.POST("/addToCard", cartController.AddEntry)
	router.DELETE("/deleteitemfromMycart/:id", verifyToken, cartController.DeleteEntry)

	// Payments
	router.POST("/create-payment-intent", verifyToken, paymentController.CreatePaymentIntent)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// livenessHandler handles the liveness endpoint
// @Summary Liveness check
// @Description Check if the service is running
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func livenessHandler(c *gin.Context) {
	c.String(http.StatusOK, "Bistro boss server is Running!")
}
