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

func TestCreateContact_NormalizesNonFaculty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.POST("/api/contacts", CreateContact)

	w := authedRequest(t, r, http.MethodPost, "/api/contacts", map[string]any{
		"name":      "Maria Silva",
		"email":     "maria@example.com",
		"isFaculty": false,
		"courses":   []string{"k-1"},
		"sgnLink":   "https://sgn.example/123",
	}, "u-1")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.False(t, created.IsFaculty)
	require.Empty(t, created.Courses)
	require.Empty(t, created.SGNLink)
}

func TestCreateContact_KeepsFacultyRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.POST("/api/contacts", CreateContact)

	w := authedRequest(t, r, http.MethodPost, "/api/contacts", map[string]any{
		"name":           "Prof. Souza",
		"email":          "souza@example.com",
		"isFaculty":      true,
		"courses":        []string{"k-1", "k-2"},
		"courseModality": "técnico",
		"classDays":      []string{"segunda", "quarta"},
	}, "u-1")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.IsFaculty)
	require.Equal(t, []string{"k-1", "k-2"}, created.Courses)
	require.Equal(t, models.ModalityTechnical, created.CourseModality)
}

func TestDeleteContact_CascadesTaskReferences(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	seedCategory(t, db, "cat-1", "Geral", "u-1", time.Now())

	contact := models.Contact{ID: "c-x", Name: "X", Email: "x@example.com", UserID: "u-1"}
	require.NoError(t, db.Create(&contact).Error)

	task := models.Task{
		ID: "t-1", Title: "ligar", Status: models.StatusNotStarted,
		Priority: models.PriorityMedium, CategoryID: "cat-1",
		ContactIDs:  []string{"c-x", "c-y"},
		LastUpdated: "2020-01-01T00:00:00Z", UserID: "u-1",
	}
	require.NoError(t, db.Create(&task).Error)

	untouched := models.Task{
		ID: "t-2", Title: "sem contato", Status: models.StatusNotStarted,
		Priority: models.PriorityMedium, CategoryID: "cat-1",
		ContactIDs:  []string{"c-y"},
		LastUpdated: "2020-01-01T00:00:00Z", UserID: "u-1",
	}
	require.NoError(t, db.Create(&untouched).Error)

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.DELETE("/api/contacts/:id", DeleteContact)

	w := authedRequest(t, r, http.MethodDelete, "/api/contacts/c-x", nil, "u-1")
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&after).Error)
	require.Equal(t, []string{"c-y"}, after.ContactIDs)
	require.NotEqual(t, "2020-01-01T00:00:00Z", after.LastUpdated)

	var afterUntouched models.Task
	require.NoError(t, db.Where("id = ?", "t-2").First(&afterUntouched).Error)
	require.Equal(t, []string{"c-y"}, afterUntouched.ContactIDs)
	require.Equal(t, "2020-01-01T00:00:00Z", afterUntouched.LastUpdated)
}

func TestGetContacts_ReturnsFacetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	contacts := []models.Contact{
		{ID: "c-1", Name: "Ana", Email: "ana@example.com", City: "Recife", Institution: "IFPE", UserID: "u-1"},
		{ID: "c-2", Name: "Beto", Email: "beto@example.com", City: "Olinda", Institution: "IFPE", UserID: "u-1"},
	}
	for i := range contacts {
		require.NoError(t, db.Create(&contacts[i]).Error)
	}

	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())
	r.GET("/api/contacts", GetContacts)

	w := authedRequest(t, r, http.MethodGet, "/api/contacts", nil, "u-1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Contacts     []models.Contact `json:"contacts"`
		Cities       []string         `json:"cities"`
		Institutions []string         `json:"institutions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Contacts, 2)
	require.Equal(t, []string{"Recife", "Olinda"}, resp.Cities)
	require.Equal(t, []string{"IFPE"}, resp.Institutions)
}
