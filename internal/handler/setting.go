package handler

import (
	"net/http"
	"strings"

	"github.com/elmerohueso/FamilyChores/internal/models"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type putSettingReq struct {
	Value *string `json:"value"`
}

// ListSettings returns all application settings.
func ListSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.Setting
		if err := db.Order("setting_key ASC").Find(&settings).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "failed to list settings")
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PutSetting creates or updates one setting by key.
func PutSetting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.Param("key"))
		if key == "" {
			util.Error(c, http.StatusBadRequest, "setting key is required")
			return
		}

		var req putSettingReq
		if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
			util.Error(c, http.StatusBadRequest, "value is required")
			return
		}

		setting := models.Setting{Key: key, Value: *req.Value}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
		}).Create(&setting).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "failed to save setting")
			return
		}

		util.OK(c, util.Response{
			"key":   setting.Key,
			"value": setting.Value,
		})
	}
}
