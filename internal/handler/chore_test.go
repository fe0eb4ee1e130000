package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elmerohueso/FamilyChores/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lastChore(t *testing.T, db *gorm.DB) models.Chore {
	t.Helper()
	var chore models.Chore
	require.NoError(t, db.Order("chore_id DESC").First(&chore).Error)
	return chore
}

func TestCreateChoreRepeatDefaults(t *testing.T) {
	r, db, _ := setupRouter(t)

	// no repeat key at all -> as_needed
	w := httpDo(r, "POST", "/api/chores", gin.H{"chore": "Dishes", "point_value": 5})
	require.Equal(t, http.StatusCreated, w.Code)
	chore := lastChore(t, db)
	require.NotNil(t, chore.Repeat)
	require.Equal(t, "as_needed", *chore.Repeat)
	require.Equal(t, 5, chore.PointValue)

	// empty string -> as_needed
	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Sweep", "point_value": 2, "repeat": ""})
	require.Equal(t, http.StatusCreated, w.Code)
	chore = lastChore(t, db)
	require.NotNil(t, chore.Repeat)
	require.Equal(t, "as_needed", *chore.Repeat)

	// explicit null -> no recurrence
	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Fix fence", "point_value": 20, "repeat": nil})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, lastChore(t, db).Repeat)

	// the string "none" also means no recurrence
	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Paint shed", "point_value": 30, "repeat": "none"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, lastChore(t, db).Repeat)

	// tags are normalized
	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Trash", "point_value": 1, "repeat": " Daily "})
	require.Equal(t, http.StatusCreated, w.Code)
	chore = lastChore(t, db)
	require.Equal(t, "daily", *chore.Repeat)
}

func TestCreateChoreValidation(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/chores", gin.H{"point_value": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "  ", "point_value": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Dishes"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/chores", gin.H{"chore": "Dishes", "point_value": "lots"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateChorePartial(t *testing.T) {
	r, db, _ := setupRouter(t)
	w := httpDo(r, "POST", "/api/chores", gin.H{"chore": "Mow lawn", "point_value": 10, "repeat": "weekly"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := lastChore(t, db)

	// only point_value changes
	w = httpDo(r, "PUT", "/api/chores/"+jsonNumber(created.ChoreID), gin.H{"point_value": 15})
	require.Equal(t, http.StatusOK, w.Code)
	got := lastChore(t, db)
	require.Equal(t, "Mow lawn", got.Chore)
	require.Equal(t, 15, got.PointValue)
	require.Equal(t, "weekly", *got.Repeat)

	// empty repeat normalizes exactly as in creation
	w = httpDo(r, "PUT", "/api/chores/"+jsonNumber(created.ChoreID), gin.H{"repeat": ""})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "as_needed", *lastChore(t, db).Repeat)

	// null repeat clears the policy
	w = httpDo(r, "PUT", "/api/chores/"+jsonNumber(created.ChoreID), gin.H{"repeat": nil})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, lastChore(t, db).Repeat)

	// no recognized fields
	w = httpDo(r, "PUT", "/api/chores/"+jsonNumber(created.ChoreID), gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown id
	w = httpDo(r, "PUT", "/api/chores/9999", gin.H{"point_value": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportChoresBestEffort(t *testing.T) {
	r, db, _ := setupRouter(t)

	payload := gin.H{"chores": []gin.H{
		{"chore": "Dishes", "point_value": 5},
		{"chore": "Trash", "point_value": "3", "repeat": "daily"},
		{"chore": "Laundry", "point_value": 4, "repeat": "NONE"},
		{"chore": "", "point_value": 2},            // missing name
		{"chore": "Weeds", "point_value": "a few"}, // non-numeric points
	}}
	w := httpDo(r, "POST", "/api/chores/import", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.EqualValues(t, 3, body["imported"])
	require.EqualValues(t, 2, body["errors"])

	var chores []models.Chore
	require.NoError(t, db.Order("chore_id ASC").Find(&chores).Error)
	require.Len(t, chores, 3)
	require.Equal(t, "Trash", chores[1].Chore)
	require.Equal(t, 3, chores[1].PointValue)
	require.Equal(t, "daily", *chores[1].Repeat)
	require.Nil(t, chores[2].Repeat)

	// malformed envelope fails wholesale
	w = httpDo(r, "POST", "/api/chores/import", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChores(t *testing.T) {
	r, _, _ := setupRouter(t)

	httpDo(r, "POST", "/api/chores", gin.H{"chore": "One", "point_value": 1})
	httpDo(r, "POST", "/api/chores", gin.H{"chore": "Two", "point_value": 2})

	w := httpDo(r, "GET", "/api/chores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chores []models.Chore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chores))
	require.Len(t, chores, 2)
}
