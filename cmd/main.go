package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	_ "github.com/franciscosanchezn/gin-recipe-catalog/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/config"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/controllers"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/database"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/middleware"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/services"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/storage"
	"github.com/franciscosanchezn/gin-recipe-catalog/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Recipe Catalog API
// @version 1.0
// @description Share recipes, search them by ingredient or cuisine, comment and rate.
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize services and controllers
	catalogService := services.NewCatalogService(store.New(db))
	if configuration.SeedDemoData {
		seedDatabase(db, catalogService)
	}
	recipeController := controllers.NewRecipeController(
		catalogService,
		setupImageStore(configuration),
		int64(configuration.MaxUploadMB)<<20,
	)

	router := setupRouter(db, recipeController, configuration)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
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
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	// an explicit LOG_LEVEL wins over the APP_ENV default
	if os.Getenv("LOG_LEVEL") != "" {
		if level, err := log.ParseLevel(conf.LogLevel); err == nil {
			log.SetLevel(level)
		}
	}
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}

// setupDatabase opens the database and creates the catalog schema when absent
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// setupImageStore selects where uploaded recipe images are written
func setupImageStore(conf *config.Config) storage.ImageStore {
	if conf.ImageStorage == config.ImageStorageS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    conf.S3Bucket,
			Region:    conf.S3Region,
			Prefix:    conf.S3Prefix,
			Endpoint:  conf.S3Endpoint,
			AccessKey: conf.AWSAccessKey,
			SecretKey: conf.AWSSecretKey,
		})
		checkPanicErr(err)
		log.WithField("bucket", conf.S3Bucket).Info("Storing images in S3")
		return s3Store
	}
	log.WithField("dir", conf.UploadDir).Info("Storing images on local disk")
	return storage.NewLocalStore(conf.UploadDir)
}

// seedDatabase adds a few recipes when the catalog is empty
func seedDatabase(db *gorm.DB, catalog services.CatalogService) {
	var count int64
	if err := db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("Could not count recipes, skipping seed")
		return
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return
	}

	log.Info("Database is empty, seeding initial data")
	recipes := []models.RecipeInput{
		{Title: "Margherita Pizza", Ingredients: "Tomato sauce, Mozzarella, Basil, Dough", Instructions: "Stretch the dough, top and bake at 250C for 8 minutes.", Cuisine: "Italian", PrepTime: "30 min"},
		{Title: "Chicken Tikka Masala", Ingredients: "Chicken thighs, yogurt, garam masala, tomatoes, cream", Instructions: "Marinate, grill, then simmer in the sauce.", Cuisine: "Indian", PrepTime: "1 hour"},
		{Title: "Guacamole", Ingredients: "Avocados, lime, onion, cilantro, salt", Instructions: "Mash and mix everything.", Cuisine: "Mexican", PrepTime: "10 min"},
	}
	ctx := context.Background()
	for _, recipe := range recipes {
		if _, err := catalog.CreateRecipe(ctx, recipe); err != nil {
			log.WithError(err).WithField("title", recipe.Title).Error("Failed to seed recipe")
		}
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(db *gorm.DB, rc controllers.RecipeController, conf *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log.StandardLogger()), middleware.Recovery(log.StandardLogger()))
	router.MaxMultipartMemory = int64(conf.MaxUploadMB) << 20

	if conf.ImageStorage == config.ImageStorageLocal {
		router.Static(path.Join("/", conf.UploadDir), conf.UploadDir)
	}

	setupRoutes(router, db, rc)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, db *gorm.DB, rc controllers.RecipeController) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Schema initialization for dev/testing
	router.GET("/init-db", initDBHandler(db))

	// Catalog routes
	controllers.RegisterRoutes(router, rc)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-recipe-catalog",
	})
}

// initDBHandler creates the schema if it is missing
// @Summary Initialize database
// @Description Create the catalog tables when absent. Safe to call repeatedly.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.APIError
// @Router /init-db [get]
func initDBHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.Migrate(db); err != nil {
			log.WithError(err).Error("Database initialization failed")
			c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Database initialization failed"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "Database initialized."})
	}
}
