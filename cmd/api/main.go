package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/auth"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/config"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/contacts"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/db"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/live"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/menu"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/middleware"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/reservations"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/storage"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("missing env var: JWT_SECRET")
	}

	// ───────────────────────── STORE ─────────────────────────
	var store docstore.Store
	var userRepo auth.UserRepository

	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("postgres init failed: %v", err)
		}
		defer pool.Close()

		store = docstore.NewPostgres(pool)
		userRepo = auth.NewPostgresUserRepository(pool)
	} else {
		logrus.Println("DATABASE_URL not set, using in-memory store")
		store = docstore.NewMemory()
		userRepo = auth.NewInMemoryUserRepository()
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var menuStorage menu.Storage
	if cfg.Storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background(), cfg.Storage)
		if err != nil {
			logrus.Fatalf("R2 init failed: %v", err)
		}
		menuStorage = r2Client
	} else {
		logrus.Println("object storage not configured, image upload disabled")
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── SERVICES ─────────────────────────
	hub := live.NewHub()

	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	reservationService := reservations.NewService(store, hub, cfg.Rates)
	menuService := menu.NewService(store, menuStorage, hub)
	contactService := contacts.NewService(store, hub)

	if err := reservationService.Start(); err != nil {
		logrus.Fatalf("reservation subscription failed: %v", err)
	}
	defer reservationService.Stop()

	if err := menuService.Start(); err != nil {
		logrus.Fatalf("menu subscription failed: %v", err)
	}
	defer menuService.Stop()

	if err := contactService.Start(); err != nil {
		logrus.Fatalf("contact subscription failed: %v", err)
	}
	defer contactService.Stop()

	reservationHandler := reservations.NewHandler(reservationService)
	menuHandler := menu.NewHandler(menuService)
	contactHandler := contacts.NewHandler(contactService)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/session", authHandler.Session)
			protected.POST("/logout", authHandler.Logout)
		}
	}

	// ───────────────────────── API ROUTES ─────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/overview", reservationHandler.Overview)

		api.GET("/menu", menuHandler.List)
		api.POST("/menu/:category/items", menuHandler.Add)
		api.PUT("/menu/:category/items/:index", menuHandler.Edit)
		api.DELETE("/menu/:category/items/:index", menuHandler.Delete)
		api.POST("/menu/images", menuHandler.UploadImage)

		api.GET("/contacts", contactHandler.List)
		api.GET("/contacts/recent", contactHandler.Recent)
	}

	// ───────────────────────── LIVE FEED ─────────────────────────
	r.GET("/ws", hub.Handle)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── STATIC ASSETS ─────────────────────────
	// Serve the built client; unknown paths fall back to index.html so
	// client-side routing keeps working after a refresh.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/auth") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		file := filepath.Join(cfg.StaticDir, filepath.Clean(path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	// ───────────────────────── START ─────────────────────────
	logrus.Printf("admin backend running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
