package httpserver

import (
	"log"
	"net/http"

	authsvc "gamestore/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type authHandler struct {
	svc    authService
	logger *log.Logger
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) register(c *gin.Context) {
	var req authsvc.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"user": toUserResponse(*user), "token": token})
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}
	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"user": toUserResponse(*user), "token": token})
}

func (h *authHandler) profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not authorized")
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"user": toUserResponse(*user)})
}
