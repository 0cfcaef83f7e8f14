package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docnest-backend/internal/files"
	"docnest-backend/internal/shared/config"
	"docnest-backend/internal/shared/server/middleware"
	"docnest-backend/internal/shared/server/respond"
	"docnest-backend/internal/shared/storage/db"
	"docnest-backend/internal/shared/storage/object"
	localstore "docnest-backend/internal/shared/storage/object/local"
	s3store "docnest-backend/internal/shared/storage/object/s3"
	"docnest-backend/internal/thumbnail"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := buildStore(cfg)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo files.Repo
	if sqlDB != nil {
		repo = &files.PGRepo{DB: sqlDB}
	} else {
		repo = files.NewMemoryRepo()
	}

	svc := &files.Service{
		Store: store,
		Repo:  repo,
		Thumbs: thumbnail.New(thumbnail.Spec{
			Width:        cfg.ThumbWidth,
			Height:       cfg.ThumbHeight,
			PDFRenderDPI: float64(cfg.ThumbPDFDPI),
		}),
		SignedURLTTL: time.Duration(cfg.SignedURLTTL) * time.Minute,
	}
	handler := files.NewHandler(svc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	return r
}

func buildStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err == nil {
			return store
		}
		log.Printf("failed to build s3 store, falling back to local: %v", err)
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
