package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-app/backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		email, _ := CurrentUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := setupAuthRouter(auth.NewTokenManager("secret", 30*time.Minute))

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 30*time.Minute)
	r := setupAuthRouter(tokens)

	token, err := tokens.Issue(1, "a@x.com")
	require.NoError(t, err)

	for _, header := range []string{"Basic abc", token, "Bearer"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := setupAuthRouter(auth.NewTokenManager("secret", 30*time.Minute))

	forged, err := auth.NewTokenManager("other-secret", 30*time.Minute).Issue(1, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	// Negative TTL: the token is already expired when presented.
	tokens := auth.NewTokenManager("secret", -time.Minute)
	r := setupAuthRouter(tokens)

	token, err := tokens.Issue(1, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsPrincipal(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 30*time.Minute)
	r := setupAuthRouter(tokens)

	token, err := tokens.Issue(7, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"email":"a@x.com"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
