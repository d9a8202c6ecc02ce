package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TheOutlierDev/UppbeatApi/internal/user"
)

type Handler struct {
	tokens Service
	users  user.Service
	log    *zap.Logger
}

func NewHandler(tokens Service, users user.Service, log *zap.Logger) *Handler {
	return &Handler{tokens: tokens, users: users, log: log}
}

type TokenRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Token exchanges a known user id for a signed bearer token.
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.users.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		h.log.Error("user lookup failed", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := h.tokens.GenerateToken(existing.Name, existing.Role)
	if err != nil {
		h.log.Error("token generation failed", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
