package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/elmerohueso/FamilyChores/internal/models"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ChoreHandler serves the chore catalog endpoints.
type ChoreHandler struct {
	DB *gorm.DB
}

func NewChoreHandler(db *gorm.DB) *ChoreHandler {
	return &ChoreHandler{DB: db}
}

type createChoreReq struct {
	Chore            string         `json:"chore"`
	PointValue       *int           `json:"point_value"`
	Repeat           util.OptString `json:"repeat"`
	RequiresApproval bool           `json:"requires_approval"`
}

type updateChoreReq struct {
	Chore            util.OptString `json:"chore"`
	PointValue       util.OptInt    `json:"point_value"`
	Repeat           util.OptString `json:"repeat"`
	RequiresApproval util.OptBool   `json:"requires_approval"`
}

// ListChores returns every chore definition.
func (h *ChoreHandler) ListChores(c *gin.Context) {
	var chores []models.Chore
	if err := h.DB.Order("chore_id ASC").Find(&chores).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list chores")
		return
	}
	c.JSON(http.StatusOK, chores)
}

// CreateChore creates one chore. A missing or empty repeat tag defaults
// to "as_needed"; an explicit null (or "null"/"none") stores no
// recurrence policy.
func (h *ChoreHandler) CreateChore(c *gin.Context) {
	var req createChoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "point_value must be a number")
		return
	}

	req.Chore = strings.TrimSpace(req.Chore)
	if req.Chore == "" {
		util.Error(c, http.StatusBadRequest, "chore is required")
		return
	}
	if req.PointValue == nil {
		util.Error(c, http.StatusBadRequest, "point_value is required")
		return
	}

	var repeat *string
	switch {
	case !req.Repeat.Set:
		tag := models.RepeatAsNeeded
		repeat = &tag
	case !req.Repeat.Valid:
		repeat = nil
	default:
		repeat = util.NormalizeRepeat(req.Repeat.Value)
	}

	chore := models.Chore{
		Chore:            req.Chore,
		PointValue:       *req.PointValue,
		Repeat:           repeat,
		RequiresApproval: req.RequiresApproval,
	}
	if err := h.DB.Create(&chore).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create chore")
		return
	}

	util.Created(c, util.Response{
		"chore_id": chore.ChoreID,
		"message":  "Chore created successfully",
	})
}

// UpdateChore applies a partial update: only fields present in the body
// are touched.
func (h *ChoreHandler) UpdateChore(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "invalid chore id")
		return
	}

	var req updateChoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "point_value must be a number")
		return
	}

	updates := map[string]interface{}{}
	if req.Chore.Set {
		updates["chore"] = strings.TrimSpace(req.Chore.Value)
	}
	if req.PointValue.Set {
		if !req.PointValue.Valid {
			util.Error(c, http.StatusBadRequest, "point_value must be a number")
			return
		}
		updates["point_value"] = req.PointValue.Value
	}
	if req.Repeat.Set {
		if !req.Repeat.Valid {
			updates["repeat"] = nil
		} else {
			updates["repeat"] = util.NormalizeRepeat(req.Repeat.Value)
		}
	}
	if req.RequiresApproval.Set && req.RequiresApproval.Valid {
		updates["requires_approval"] = req.RequiresApproval.Value
	}

	if len(updates) == 0 {
		util.Error(c, http.StatusBadRequest, "no fields to update")
		return
	}

	var chore models.Chore
	if err := h.DB.First(&chore, "chore_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "chore not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load chore")
		}
		return
	}

	if err := h.DB.Model(&chore).Updates(updates).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update chore")
		return
	}

	util.OK(c, util.Response{
		"message": "Chore updated successfully",
	})
}

type importChoresReq struct {
	Chores *[]map[string]interface{} `json:"chores"`
}

// ImportChores bulk-inserts chores, best effort. Each entry is validated
// on its own; bad entries are counted as errors instead of failing the
// whole batch.
func (h *ChoreHandler) ImportChores(c *gin.Context) {
	var req importChoresReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Chores == nil {
		util.Error(c, http.StatusBadRequest, "chores array is required")
		return
	}

	imported := 0
	errored := 0
	for _, item := range *req.Chores {
		name, _ := item["chore"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			errored++
			continue
		}

		pointValue, err := util.ParsePointValue(item["point_value"])
		if err != nil {
			errored++
			continue
		}

		// unlike creation, a null repeat on import falls back to the
		// default; only the literal strings "null"/"none" disable
		// recurrence tracking
		rawRepeat, _ := item["repeat"].(string)
		repeat := util.NormalizeRepeat(rawRepeat)

		chore := models.Chore{
			Chore:      name,
			PointValue: pointValue,
			Repeat:     repeat,
		}
		if err := h.DB.Create(&chore).Error; err != nil {
			errored++
			continue
		}
		imported++
	}

	util.Created(c, util.Response{
		"imported": imported,
		"errors":   errored,
		"message":  strconv.Itoa(imported) + " chore(s) imported",
	})
}
