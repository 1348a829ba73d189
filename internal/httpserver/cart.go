package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartHandler struct {
	svc    cartService
	logger *log.Logger
}

type addToCartRequest struct {
	GameID   string `json:"gameId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (h *cartHandler) get(c *gin.Context) {
	user, _ := currentUser(c)
	cart, err := h.svc.Get(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": toCartResponse(*cart)})
}

func (h *cartHandler) add(c *gin.Context) {
	user, _ := currentUser(c)
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "gameId and a quantity of at least 1 are required")
		return
	}
	cart, err := h.svc.Add(c.Request.Context(), user.ID, req.GameID, req.Quantity)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": toCartResponse(*cart)})
}

func (h *cartHandler) updateItem(c *gin.Context) {
	user, _ := currentUser(c)
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	cart, err := h.svc.UpdateItem(c.Request.Context(), user.ID, c.Param("itemId"), req.Quantity)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": toCartResponse(*cart)})
}

func (h *cartHandler) removeItem(c *gin.Context) {
	user, _ := currentUser(c)
	cart, err := h.svc.Remove(c.Request.Context(), user.ID, c.Param("itemId"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": toCartResponse(*cart)})
}

func (h *cartHandler) clear(c *gin.Context) {
	user, _ := currentUser(c)
	cart, err := h.svc.Clear(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": toCartResponse(*cart)})
}
