package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/blog-api/internal/config"
	"github.com/iliyamo/blog-api/internal/handler"
	"github.com/iliyamo/blog-api/internal/memorystorage"
	"github.com/iliyamo/blog-api/internal/router"
)

// testCfg keeps bcrypt cheap so the suite stays fast.
var testCfg = config.Config{
	JWTSecret:    "test-secret",
	AccessTTLMin: 60,
	BcryptCost:   4,
}

type testAPI struct {
	e     *echo.Echo
	users *memorystorage.UserStorage
	blogs *memorystorage.BlogStorage
}

func newTestAPI() *testAPI {
	users := memorystorage.NewUserStorage()
	blogs := memorystorage.NewBlogStorage()
	e := echo.New()
	router.Register(e,
		handler.NewAuthHandler(testCfg, users),
		handler.NewBlogHandler(blogs, nil),
		testCfg.JWTSecret)
	return &testAPI{e: e, users: users, blogs: blogs}
}

func (a *testAPI) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

const adaSignup = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"hunter2"}`

func TestSignup(t *testing.T) {
	api := newTestAPI()

	rec := api.do(http.MethodPost, "/signup", "", adaSignup)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "user registered successfully")

	// the stored record never holds the plaintext
	u, err := api.users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.NotEmpty(t, u.ID)

	rec = api.do(http.MethodPost, "/signup", "", adaSignup)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/signup", "", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	api := newTestAPI()
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/signup", "", adaSignup).Code)

	rec := api.do(http.MethodPost, "/login", "", `{"email":"ada@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "login successful")
	assert.Contains(t, rec.Body.String(), "token")

	rec = api.do(http.MethodPost, "/login", "", `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/login", "", `{"email":"nobody@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	api := newTestAPI()
	rec := api.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
