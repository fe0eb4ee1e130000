package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/elmerohueso/FamilyChores/internal/models"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler snapshots the SQLite database into the backup directory
// and manages the snapshot files.
type BackupHandler struct {
	DB        *gorm.DB
	BackupDir string
}

func NewBackupHandler(db *gorm.DB, backupDir string) *BackupHandler {
	return &BackupHandler{DB: db, BackupDir: backupDir}
}

// CreateBackup writes a consistent snapshot of the database via
// VACUUM INTO and records it.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create backup dir")
		return
	}

	fileName := fmt.Sprintf("family_chores_backup_%s_%s.db",
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := h.DB.Exec("VACUUM INTO ?", filePath).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to write backup")
		return
	}

	info, _ := os.Stat(filePath)
	backup := models.Backup{
		FileName: fileName,
		FilePath: filePath,
	}
	if info != nil {
		backup.Size = info.Size()
	}
	if err := h.DB.Create(&backup).Error; err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, "failed to record backup")
		return
	}

	util.Created(c, util.Response{
		"id":         backup.ID,
		"file_name":  backup.FileName,
		"size":       backup.Size,
		"created_at": backup.CreatedAt,
	})
}

// ListBackups lists recorded snapshots, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	var list []models.Backup
	if err := h.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list backups")
		return
	}
	c.JSON(http.StatusOK, list)
}

// DownloadBackup serves a snapshot file.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	var backup models.Backup
	if err := h.DB.First(&backup, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load backup")
		}
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", backup.FileName))
	c.File(backup.FilePath)
}

// DeleteBackup removes the snapshot file and its record.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	var backup models.Backup
	if err := h.DB.First(&backup, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load backup")
		}
		return
	}

	// file first, then record
	_ = os.Remove(backup.FilePath)
	if err := h.DB.Delete(&backup).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete backup")
		return
	}

	util.OK(c, util.Response{
		"message": "Backup deleted",
	})
}
