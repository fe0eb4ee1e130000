package handler

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/elmerohueso/FamilyChores/internal/models"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserHandler serves the user directory endpoints, including avatar
// uploads and the per-user cash balance.
type UserHandler struct {
	DB        *gorm.DB
	AvatarDir string
}

func NewUserHandler(db *gorm.DB, avatarDir string) *UserHandler {
	return &UserHandler{DB: db, AvatarDir: avatarDir}
}

type createUserReq struct {
	FullName string      `json:"full_name"`
	Balance  interface{} `json:"balance"`
}

// ListUsers returns all users with their current balances and avatars.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("user_id ASC").Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser registers a new user. An absent or unparseable starting
// balance silently defaults to zero; only the ledger path is strict
// about numeric input.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		util.Error(c, http.StatusBadRequest, "full_name is required")
		return
	}

	balance := 0
	if b, err := util.ParsePointValue(req.Balance); err == nil {
		balance = b
	}

	user := models.User{
		FullName: req.FullName,
		Balance:  balance,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	util.Created(c, util.Response{
		"user_id": user.UserID,
		"message": "User created successfully",
	})
}

// UploadAvatar stores an avatar image for a user and deletes the
// previous one, best effort.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		util.Error(c, http.StatusBadRequest, "no file provided")
		return
	}
	ext, ok := util.AvatarExt(file.Filename)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid file type, allowed: png, jpg, jpeg, gif, webp")
		return
	}
	if file.Size > util.MaxAvatarSize {
		util.Error(c, http.StatusBadRequest, "file too large, maximum size is 5MB")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load user")
		}
		return
	}

	u := uuid.New()
	fileName := fmt.Sprintf("%d_%s.%s", user.UserID, hex.EncodeToString(u[:]), ext)
	if err := os.MkdirAll(h.AvatarDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create avatar dir")
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.AvatarDir, fileName)); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	// drop the previous avatar; a leftover file is not worth failing
	// the upload over
	if user.AvatarPath != "" {
		old := filepath.Join(h.AvatarDir, filepath.Base(user.AvatarPath))
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			slog.Warn("delete old avatar", "path", old, "err", err)
		}
	}

	avatarPath := path.Join("avatars", fileName)
	if err := h.DB.Model(&user).Update("avatar_path", avatarPath).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update user")
		return
	}

	util.OK(c, util.Response{
		"avatar_path": avatarPath,
		"message":     "Avatar uploaded successfully",
	})
}

type putCashReq struct {
	CashBalance *float64 `json:"cash_balance"`
}

// GetCashBalance returns a user's cash balance, zero when no row exists.
func (h *UserHandler) GetCashBalance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if !h.userExists(c, uint(id)) {
		return
	}

	var cash models.CashBalance
	if err := h.DB.First(&cash, "user_id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusInternalServerError, "failed to load cash balance")
			return
		}
		cash = models.CashBalance{UserID: uint(id)}
	}

	util.OK(c, util.Response{
		"user_id":      cash.UserID,
		"cash_balance": cash.CashBalance,
	})
}

// PutCashBalance sets a user's cash balance, creating the row on first
// write.
func (h *UserHandler) PutCashBalance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req putCashReq
	if err := c.ShouldBindJSON(&req); err != nil || req.CashBalance == nil {
		util.Error(c, http.StatusBadRequest, "cash_balance is required")
		return
	}
	if !h.userExists(c, uint(id)) {
		return
	}

	cash := models.CashBalance{UserID: uint(id), CashBalance: *req.CashBalance}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cash_balance"}),
	}).Create(&cash).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save cash balance")
		return
	}

	util.OK(c, util.Response{
		"user_id":      cash.UserID,
		"cash_balance": cash.CashBalance,
	})
}

// userExists writes the error reply itself and returns false when the
// user cannot be confirmed.
func (h *UserHandler) userExists(c *gin.Context, id uint) bool {
	var count int64
	if err := h.DB.Model(&models.User{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to load user")
		return false
	}
	if count == 0 {
		util.Error(c, http.StatusNotFound, "user not found")
		return false
	}
	return true
}
