package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	svc    orderService
	logger *log.Logger
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *orderHandler) list(c *gin.Context) {
	user, _ := currentUser(c)
	orders, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	respondSuccess(c, http.StatusOK, gin.H{"orders": out})
}

func (h *orderHandler) get(c *gin.Context) {
	user, _ := currentUser(c)
	order, err := h.svc.Get(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"order": toOrderResponse(*order)})
}

func (h *orderHandler) create(c *gin.Context) {
	user, _ := currentUser(c)
	order, err := h.svc.Create(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"order": toOrderResponse(*order)})
}

func (h *orderHandler) updateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"order": toOrderResponse(*order)})
}
