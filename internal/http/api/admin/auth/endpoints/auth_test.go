package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/courtside-live/courtside/internal/http/api"
	"github.com/courtside-live/courtside/internal/model"
)

const testSecret = "test-secret"

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	nextID int
	users  map[string]*model.User
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, users: map[string]*model.User{}}
}

func (s *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := s.nextID
	s.nextID++
	s.users[email] = &model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	return id, nil
}

func (s *memStore) GetUserByEmail(email string) (*model.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) GetUserByID(id int) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) UpdateUserProfile(id int, email string, name *string) error {
	u, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	delete(s.users, u.Email)
	u.Email = email
	u.Name = name
	s.users[email] = u
	return nil
}

func newAuthRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/auth"},
		AuthPublicModule(testSecret, store),
	)
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/auth",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	},
		AuthSessionModule(testSecret, store),
	)
	return r
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndGetToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := postJSON(router, "/auth/register", map[string]string{
		"email":    "op@example.com",
		"password": "testpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	router := newAuthRouter(newMemStore())
	registerAndGetToken(t, router)

	w := postJSON(router, "/auth/login", map[string]string{
		"email":    "op@example.com",
		"password": "testpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newAuthRouter(newMemStore())
	registerAndGetToken(t, router)

	w := postJSON(router, "/auth/register", map[string]string{
		"email":    "op@example.com",
		"password": "otherpassword",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newAuthRouter(newMemStore())
	registerAndGetToken(t, router)

	w := postJSON(router, "/auth/login", map[string]string{
		"email":    "op@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_WithToken(t *testing.T) {
	router := newAuthRouter(newMemStore())
	token := registerAndGetToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "op@example.com")
}

func TestUpdateProfile(t *testing.T) {
	store := newMemStore()
	router := newAuthRouter(store)
	token := registerAndGetToken(t, router)

	name := "Courtside Operator"
	body, _ := json.Marshal(map[string]any{
		"email": "newop@example.com",
		"name":  name,
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newop@example.com", resp.Email)
	if assert.NotNil(t, resp.Name) {
		assert.Equal(t, name, *resp.Name)
	}

	// the store reflects the change
	stored, err := store.GetUserByEmail("newop@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	store := newMemStore()
	router := newAuthRouter(store)
	token := registerAndGetToken(t, router)

	w := postJSON(router, "/auth/register", map[string]string{
		"email":    "other@example.com",
		"password": "testpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body, _ := json.Marshal(map[string]any{"email": "other@example.com"})
	req := httptest.NewRequest(http.MethodPut, "/auth/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMe_WithoutToken(t *testing.T) {
	router := newAuthRouter(newMemStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
