package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elmerohueso/FamilyChores/internal/ledger"
	"github.com/elmerohueso/FamilyChores/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string, balance int) models.User {
	t.Helper()
	user := models.User{FullName: name, Balance: balance}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedChore(t *testing.T, db *gorm.DB, name string, points int) models.Chore {
	t.Helper()
	chore := models.Chore{Chore: name, PointValue: points}
	require.NoError(t, db.Create(&chore).Error)
	return chore
}

func TestRecordCompletion(t *testing.T) {
	r, db, _ := setupRouter(t)
	user := seedUser(t, db, "Alice", 0)
	chore := seedChore(t, db, "Dishes", 5)

	w := httpDo(r, "POST", "/api/transactions", gin.H{
		"user_id":  user.UserID,
		"chore_id": chore.ChoreID,
		"value":    5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotZero(t, decodeBody(t, w)["transaction_id"])

	var got models.User
	require.NoError(t, db.First(&got, "user_id = ?", user.UserID).Error)
	require.Equal(t, 5, got.Balance)
}

func TestRecordRedemption(t *testing.T) {
	r, db, _ := setupRouter(t)
	user := seedUser(t, db, "Alice", 10)

	// a redemption has no chore attached
	w := httpDo(r, "POST", "/api/transactions", gin.H{
		"user_id": user.UserID,
		"value":   -4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.User
	require.NoError(t, db.First(&got, "user_id = ?", user.UserID).Error)
	require.Equal(t, 6, got.Balance)
}

func TestRecordTransactionInsufficientBalance(t *testing.T) {
	r, db, _ := setupRouter(t)
	user := seedUser(t, db, "Alice", 10)

	w := httpDo(r, "POST", "/api/transactions", gin.H{
		"user_id": user.UserID,
		"value":   -15,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "10")

	// the balance and ledger are untouched
	var got models.User
	require.NoError(t, db.First(&got, "user_id = ?", user.UserID).Error)
	require.Equal(t, 10, got.Balance)
	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRecordTransactionValidation(t *testing.T) {
	r, db, _ := setupRouter(t)
	user := seedUser(t, db, "Alice", 0)

	// value missing
	w := httpDo(r, "POST", "/api/transactions", gin.H{"user_id": user.UserID})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// value not an integer
	w = httpDo(r, "POST", "/api/transactions", gin.H{"user_id": user.UserID, "value": 3.5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// user_id missing
	w = httpDo(r, "POST", "/api/transactions", gin.H{"value": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown user
	w = httpDo(r, "POST", "/api/transactions", gin.H{"user_id": 9999, "value": 5})
	require.Equal(t, http.StatusNotFound, w.Code)

	// unknown chore
	w = httpDo(r, "POST", "/api/transactions", gin.H{"user_id": user.UserID, "chore_id": 9999, "value": 5})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTransactionsEnriched(t *testing.T) {
	r, db, _ := setupRouter(t)
	user := seedUser(t, db, "Alice", 10)
	chore := seedChore(t, db, "Dishes", 5)

	w := httpDo(r, "POST", "/api/transactions", gin.H{
		"user_id":   user.UserID,
		"chore_id":  chore.ChoreID,
		"value":     5,
		"timestamp": "2026-08-30T09:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httpDo(r, "POST", "/api/transactions", gin.H{
		"user_id":   user.UserID,
		"value":     -3,
		"timestamp": "2026-08-31T18:30:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httpDo(r, "GET", "/api/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []ledger.TransactionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)

	// newest first
	require.Equal(t, -3, records[0].Value)
	require.NotNil(t, records[0].UserName)
	require.Equal(t, "Alice", *records[0].UserName)
	require.Nil(t, records[0].ChoreName)

	require.Equal(t, 5, records[1].Value)
	require.NotNil(t, records[1].ChoreName)
	require.Equal(t, "Dishes", *records[1].ChoreName)
}

func TestListTransactionsEmpty(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())
}
