package httpserver

import (
	"log"
	"math"
	"net/http"
	"strconv"

	gamerepo "gamestore/internal/repository/game"
	gamesvc "gamestore/internal/service/game"
	"github.com/gin-gonic/gin"
)

type gameHandler struct {
	svc    gameService
	logger *log.Logger
}

func (h *gameHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	games, total, err := h.svc.List(c.Request.Context(), gamerepo.ListFilter{
		Genre:    c.Query("genre"),
		Platform: c.Query("platform"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, toGameResponse(g))
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"games": out,
		"page":  page,
		"pages": int(math.Ceil(float64(total) / float64(limit))),
		"total": total,
	})
}

func (h *gameHandler) get(c *gin.Context) {
	game, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"game": toGameResponse(*game)})
}

func (h *gameHandler) create(c *gin.Context) {
	var in gamesvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	game, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"game": toGameResponse(*game)})
}

func (h *gameHandler) update(c *gin.Context) {
	var in gamesvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	game, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"game": toGameResponse(*game)})
}

func (h *gameHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}
