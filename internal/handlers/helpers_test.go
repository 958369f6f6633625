package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shuhuiluo/trivia-game/internal/config"
	"github.com/shuhuiluo/trivia-game/internal/models"
	"github.com/shuhuiluo/trivia-game/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds the full router over a fresh in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Category{},
		&models.Question{},
		&models.Round{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{Env: "test"}
	return NewRouter(db, cfg, ws.NewHub()), db
}

// doJSON performs a request against the router. A non-empty sessionCookie
// is sent as the session cookie value.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, sessionCookie string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionCookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionFrom extracts the session cookie value from a response.
func sessionFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == "session" {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// seedQuestion inserts a category with one four-option question and
// returns the category id.
func seedQuestion(t *testing.T, db *gorm.DB, category, text string, correctIndex int) uint {
	t.Helper()

	cat := models.Category{Name: category}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	opts, _ := json.Marshal([]string{"A", "B", "C", "D"})
	question := models.Question{
		CategoryID:   cat.ID,
		Text:         text,
		Options:      string(opts),
		CorrectIndex: correctIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return cat.ID
}

func registerUser(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}
	return sessionFrom(t, w)
}
