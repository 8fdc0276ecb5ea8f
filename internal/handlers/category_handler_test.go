package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/middleware"
	"github.com/brandoline/Kanbanize.me/internal/models"
	"github.com/brandoline/Kanbanize.me/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetCategories_ProvisionsDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.GET("/api/categories", GetCategories)

	w := authedRequest(t, r, http.MethodGet, "/api/categories", nil, "u-1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 3)
	require.Equal(t, "Geral", resp.Categories[0].Name)
	require.Equal(t, "Urgente", resp.Categories[1].Name)
	require.Equal(t, "Projeto", resp.Categories[2].Name)
	for _, cat := range resp.Categories {
		require.NotEmpty(t, cat.ID)
	}

	// A second call returns the same set without provisioning again
	w = authedRequest(t, r, http.MethodGet, "/api/categories", nil, "u-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 3)
}

func TestDeleteCategory_ReassignsTasksToFirstRemaining(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	seedCategory(t, db, "cat-first", "Geral", "u-1", time.Now().Add(-2*time.Hour))
	seedCategory(t, db, "cat-doomed", "Projetos antigos", "u-1", time.Now().Add(-time.Hour))

	task := models.Task{
		ID: "t-1", Title: "migrar", Status: models.StatusNotStarted,
		Priority: models.PriorityMedium, CategoryID: "cat-doomed",
		LastUpdated: "2020-01-01T00:00:00Z", UserID: "u-1",
	}
	require.NoError(t, db.Create(&task).Error)

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.DELETE("/api/categories/:id", DeleteCategory)

	w := authedRequest(t, r, http.MethodDelete, "/api/categories/cat-doomed", nil, "u-1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ReassignedCategory models.Category `json:"reassignedCategory"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "cat-first", resp.ReassignedCategory.ID)

	var moved models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&moved).Error)
	require.Equal(t, "cat-first", moved.CategoryID)
	require.NotEqual(t, "2020-01-01T00:00:00Z", moved.LastUpdated)

	var count int64
	db.Model(&models.Category{}).Where("user_id = ?", "u-1").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDeleteCategory_LastOneRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	seedCategory(t, db, "cat-only", "Geral", "u-1", time.Now())

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.DELETE("/api/categories/:id", DeleteCategory)

	w := authedRequest(t, r, http.MethodDelete, "/api/categories/cat-only", nil, "u-1")
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Category{}).Where("user_id = ?", "u-1").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.DELETE("/api/categories/:id", DeleteCategory)

	w := authedRequest(t, r, http.MethodDelete, "/api/categories/ghost", nil, "u-1")
	require.Equal(t, http.StatusNotFound, w.Code)
}
