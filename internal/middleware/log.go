package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/elmerohueso/FamilyChores/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemLog records every mutating API request in the system_log table.
// Reads are skipped, and a failed insert never fails the request itself.
func SystemLog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		// capture the body for the log entry, then restore it
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		details := ""
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			details = string(bodyBytes)
		}

		entry := models.SystemLog{
			Timestamp: time.Now(),
			LogType:   "http_request",
			Message:   c.Request.Method + " " + c.Request.URL.Path,
			Details:   details,
			Status:    strconv.Itoa(c.Writer.Status()),
			IPAddress: c.ClientIP(),
		}
		if err := db.Create(&entry).Error; err != nil {
			slog.Warn("write system log", "err", err)
		}
	}
}
