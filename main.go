package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Adria66/videogame-keeper/config"
	"github.com/Adria66/videogame-keeper/controllers"
	"github.com/Adria66/videogame-keeper/data_access"
	"github.com/Adria66/videogame-keeper/middleware"
	"github.com/Adria66/videogame-keeper/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/mongo/mongodriver"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Sessions live server-side in Mongo and expire after a day of
// inactivity.
const sessionTTL = 24 * 60 * 60

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warnf(".env file not found: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Env == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// A catalog app without its store is useless, so a failed connect
	// is fatal rather than logged and ignored.
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	logrus.WithField("database", cfg.DBName).Info("connected to Mongo")

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	videogameRepo := data_access.NewVideogameRepository(mongodb)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	videogameService := services.NewVideogameService(videogameRepo, userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	videogameController := controllers.NewVideogameController(videogameService)

	// Setup Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/public", "./public")

	sessionStore := mongodriver.NewStore(
		mongodb.Collection("sessions"),
		sessionTTL,
		true,
		[]byte(cfg.SessionSecret),
	)
	r.Use(sessions.Sessions("videogame-keeper", sessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	authController.RegisterRoutes(r)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.SessionRequired())
	videogameController.RegisterRoutes(protected)

	logrus.Infof("server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
