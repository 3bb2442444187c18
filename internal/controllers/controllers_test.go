package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/middleware"
	"nagorik_desk/internal/models"
	"nagorik_desk/internal/routes"
	"nagorik_desk/internal/storage"
	"nagorik_desk/internal/summarizer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTest wires a fresh file-backed SQLite database, a temp-dir upload
// store and an unreachable summarizer (exercising the raw-text fallback),
// then returns the full router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	require.NoError(t, storage.Setup(filepath.Join(t.TempDir(), "uploads")))

	summarizer.Default = &summarizer.Client{
		URL:  "http://127.0.0.1:1",
		HTTP: &http.Client{Timeout: time.Second},
	}

	return routes.SetupRouter()
}

func createSector(t *testing.T, name string) models.Sector {
	t.Helper()
	sector := models.Sector{
		Name:        name,
		Description: name + " services",
		Subsectors:  []models.Subsector{{Name: name + " General"}},
	}
	require.NoError(t, config.DB.Create(&sector).Error)
	return sector
}

func createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test " + email,
		Email:        email,
		Phone:        "phone-" + email,
		Nid:          "nid-" + email,
		Password:     string(hash),
		IsRegistered: true,
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// reportForm builds a multipart report-creation request body.
func reportForm(t *testing.T, fields map[string]string, imageNames ...string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
