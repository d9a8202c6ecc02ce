package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheOutlierDev/UppbeatApi/internal/auth"
	"github.com/TheOutlierDev/UppbeatApi/internal/middleware"
	"github.com/TheOutlierDev/UppbeatApi/internal/user"
)

func newTokenService(t *testing.T) auth.Service {
	t.Helper()
	service, err := auth.NewJWTService("secret-secret-secret", "UppbeatLibraryAPI", "UppbeatLibraryAPI")
	require.NoError(t, err)
	return service
}

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	tokens := newTokenService(t)
	token, err := tokens.GenerateToken("alice", user.RoleArtist)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens))

	// Protected Endpoint
	r.GET("/protected", func(c *gin.Context) {
		username, _ := c.Get("username")
		role, _ := c.Get("role")
		c.JSON(200, gin.H{"username": username, "role": role})
	})

	// Act 1: No Token
	req1, _ := http.NewRequest("GET", "/protected", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, req1)

	// Act 2: Malformed header
	req2, _ := http.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Token "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	// Act 3: Valid Token
	req3, _ := http.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer "+token)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req3)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w1.Code, "Should block request without token")
	assert.Equal(t, http.StatusUnauthorized, w2.Code, "Should block request with malformed header")
	assert.Equal(t, http.StatusOK, w3.Code, "Should allow request with valid token")
	assert.JSONEq(t, `{"username":"alice", "role":"Artist"}`, w3.Body.String())
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := newTokenService(t)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens))
	r.POST("/artist-only", middleware.RequireRoles(user.RoleArtist), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/members", middleware.RequireRoles(user.RoleRegular, user.RoleArtist), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	artistToken, err := tokens.GenerateToken("alice", user.RoleArtist)
	require.NoError(t, err)
	regularToken, err := tokens.GenerateToken("bob", user.RoleRegular)
	require.NoError(t, err)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"artist can mutate", "POST", "/artist-only", artistToken, http.StatusOK},
		{"regular cannot mutate", "POST", "/artist-only", regularToken, http.StatusForbidden},
		{"regular can download", "GET", "/members", regularToken, http.StatusOK},
		{"artist can download", "GET", "/members", artistToken, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
