package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/elmerohueso/FamilyChores/internal/config"
	"github.com/elmerohueso/FamilyChores/internal/handler"
	"github.com/elmerohueso/FamilyChores/internal/ledger"
	"github.com/elmerohueso/FamilyChores/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, static resources and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and uploaded avatars
	r.Static("/static", cfg.Web.StaticDir)
	r.Static("/avatars", cfg.Avatar.Dir)

	// page routes, only when a template set is deployed alongside the
	// binary; the API works without one
	if _, err := os.Stat(cfg.Web.TemplateDir); err == nil {
		r.LoadHTMLGlob(filepath.Join(cfg.Web.TemplateDir, "*"))
		pages := map[string]string{
			"/":              "index.html",
			"/add-user":      "add_user.html",
			"/add-chore":     "add_chore.html",
			"/users":         "users.html",
			"/chores":        "chores.html",
			"/record-chore":  "record_chore.html",
			"/redeem-points": "redeem_points.html",
			"/history":       "history.html",
		}
		for route, tpl := range pages {
			name := tpl
			r.GET(route, func(c *gin.Context) {
				c.HTML(http.StatusOK, name, gin.H{})
			})
		}
	}

	// ====== API ======
	api := r.Group("/api")
	api.Use(middleware.SystemLog(db))

	choreHandler := handler.NewChoreHandler(db)
	api.GET("/chores", choreHandler.ListChores)
	api.POST("/chores", choreHandler.CreateChore)
	api.PUT("/chores/:id", choreHandler.UpdateChore)
	api.POST("/chores/import", choreHandler.ImportChores)

	userHandler := handler.NewUserHandler(db, cfg.Avatar.Dir)
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.POST("/users/:id/avatar", userHandler.UploadAvatar)
	api.GET("/users/:id/cash", userHandler.GetCashBalance)
	api.PUT("/users/:id/cash", userHandler.PutCashBalance)

	ledgerService := ledger.NewService(db)
	txHandler := handler.NewTransactionHandler(ledgerService)
	api.GET("/transactions", txHandler.ListTransactions)
	api.POST("/transactions", txHandler.RecordTransaction)

	exportHandler := handler.NewExportHandler(ledgerService)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(db, cfg.Backup.Dir)
	api.POST("/backups", backupHandler.CreateBackup)
	api.GET("/backups", backupHandler.ListBackups)
	api.GET("/backups/:id/download", backupHandler.DownloadBackup)
	api.DELETE("/backups/:id", backupHandler.DeleteBackup)

	logHandler := handler.NewLogHandler(db)
	api.GET("/logs", logHandler.ListLogs)

	api.GET("/settings", handler.ListSettings(db))
	api.PUT("/settings/:key", handler.PutSetting(db))

	return r
}
