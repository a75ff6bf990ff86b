package main

import (
	"database/sql"
	"mime"
	"net/http"
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/pchalerm/dnarisk/internal/util"
	"github.com/pchalerm/dnarisk/logger"
	"github.com/pchalerm/dnarisk/pkg/config"
	mydb "github.com/pchalerm/dnarisk/pkg/db"
	"github.com/pchalerm/dnarisk/pkg/handler"
	"github.com/pchalerm/dnarisk/pkg/metrics"
	"github.com/pchalerm/dnarisk/pkg/middle"
	"github.com/pchalerm/dnarisk/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"
)

func main() {

	VERSION := "0.1.0"

	// Try load env
	dotenvErr := godotenv.Load()

	cfgPath := os.Getenv("DNARISK_CONFIG")
	if cfgPath == "" {
		cfgPath = "dnarisk.yaml"
	}

	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		panic(cfgErr)
	}

	logLevel, levelErr := zapcore.ParseLevel(cfg.Logging.Level)
	if levelErr != nil {
		logLevel = zapcore.InfoLevel
	}

	if err := logger.InitLogger(logLevel); err != nil {
		panic(err)
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}
	if levelErr != nil {
		logger.Warn("Unknown log level in config, using info", zap.String("level", cfg.Logging.Level))
	}

	dataDir := cfg.DataDir
	if env := os.Getenv("DNARISK_DATA"); env != "" {
		dataDir = env
	}

	store := &mydb.MarkerStore{Dir: dataDir}

	// Explicit bootstrap: write the default marker CSV once at startup so
	// the analyzer always has a reference table to load.
	if err := store.EnsureDefaultCSV(); err != nil {
		logger.Warn("Could not bootstrap default marker table", zap.Error(err))
	}

	markers := loadMarkerTable(store, dataDir)

	appctx := &handler.AppContext{
		Markers:          markers,
		Store:            store,
		DefaultThreshold: cfg.Threshold(),
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Reference table loaded", zap.Int("markers", len(markers)))

	mux := NewRouter(appctx)

	// Apply middleware
	chain := middle.RequestIDMiddleware()(middle.LoggingMiddleware(logger.L())(mux))

	logger.Info("Server starting", zap.String("addr", cfg.Server.Addr))
	httpErr := http.ListenAndServe(cfg.Server.Addr, chain)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

// loadMarkerTable resolves the reference table: a sqlite marker db wins,
// then the CSV file, then the built-in defaults. Every fallback is logged
// so a misconfigured deployment is visible.
func loadMarkerTable(store *mydb.MarkerStore, dataDir string) []model.MarkerRecord {

	sqlitePath := path.Join(dataDir, "db", "markers.db")
	if util.FileExists(sqlitePath) {
		db, err := sql.Open("sqlite", sqlitePath)
		if err == nil {
			defer db.Close()
			markers, loadErr := mydb.LoadMarkers(db)
			if loadErr == nil && len(markers) > 0 {
				logger.Info("Markers loaded from sqlite", zap.String("path", sqlitePath))
				return markers
			}
			logger.Warn("Marker db unusable, falling back to CSV",
				zap.String("path", sqlitePath), zap.Error(loadErr))
		}
	}

	markers, err := store.LoadMarkersCSV()
	if err != nil {
		logger.Warn("Marker CSV unusable, using built-in default table", zap.Error(err))
		return mydb.DefaultMarkers()
	}

	return markers
}

func NewRouter(appctx *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /", appctx.MainPage)
	mux.HandleFunc("POST /analyze", appctx.AnalyzePage)

	// API routes
	mux.HandleFunc("POST /api/v1/analyze", appctx.AnalyzeAPI)
	mux.HandleFunc("GET /api/v1/markers", appctx.MarkerTableAPI)
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)

	// Metrics
	mux.Handle("GET /metrics", metrics.Handler())

	// Static files
	setupStaticFiles(mux)

	return mux
}

// Manually add static for all route that use this
func setupStaticFiles(mux *http.ServeMux) {
	_ = mime.AddExtensionType(".js", "text/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	if !util.DirExists("./static") {
		logger.Warn("No static directory found, static assets will 404")
	}

	fs := http.FileServer(http.Dir("./static/"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
}
