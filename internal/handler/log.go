package handler

import (
	"net/http"
	"strconv"

	"github.com/elmerohueso/FamilyChores/internal/models"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler serves the system log.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

// ListLogs returns system log entries, newest first, with pagination and
// an optional type filter (?type=http_request).
func (h *LogHandler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.SystemLog{})
	if logType := c.Query("type"); logType != "" {
		base = base.Where("log_type = ?", logType)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to count logs")
		return
	}

	var logs []models.SystemLog
	if err := base.Session(&gorm.Session{}).
		Order("timestamp DESC, log_id DESC").
		Limit(size).
		Offset(offset).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list logs")
		return
	}

	util.OK(c, util.Response{
		"items": logs,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
