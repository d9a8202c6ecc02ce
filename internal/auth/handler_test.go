package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/TheOutlierDev/UppbeatApi/internal/auth"
	"github.com/TheOutlierDev/UppbeatApi/internal/user"
	usermocks "github.com/TheOutlierDev/UppbeatApi/internal/user/mocks"
)

const knownUserID = "7be9f6b0-3a66-46cf-a396-9b4a1da3b1e5"

func setupAuthRouter(t *testing.T, users user.Service) (*gin.Engine, auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := newService(t)
	handler := auth.NewHandler(tokens, users, zap.NewNop())

	r := gin.New()
	r.POST("/auth/token", handler.Token)
	return r, tokens
}

func TestAuthHandler_Token_KnownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := usermocks.NewMockService(ctrl)
	users.EXPECT().GetUser(gomock.Any(), knownUserID).
		Return(&user.User{ID: knownUserID, Name: "alice", Role: user.RoleArtist}, nil)

	r, tokens := setupAuthRouter(t, users)

	req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"user_id":"`+knownUserID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, ok := tokens.ParseClaims(resp.Token)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, user.RoleArtist, claims.Role)
}

func TestAuthHandler_Token_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := usermocks.NewMockService(ctrl)
	users.EXPECT().GetUser(gomock.Any(), knownUserID).Return(nil, nil)

	r, _ := setupAuthRouter(t, users)

	req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"user_id":"`+knownUserID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Token_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := usermocks.NewMockService(ctrl)
	users.EXPECT().GetUser(gomock.Any(), knownUserID).Return(nil, errors.New("connection refused"))

	r, _ := setupAuthRouter(t, users)

	req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"user_id":"`+knownUserID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Token_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := usermocks.NewMockService(ctrl)

	r, _ := setupAuthRouter(t, users)

	req, _ := http.NewRequest("POST", "/auth/token", strings.NewReader(`{"user_id":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
