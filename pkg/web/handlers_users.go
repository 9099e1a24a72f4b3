package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUser handles GET /api/users/@me
func (h *handlers) currentUser(c *gin.Context) {
	actor := identity(c)
	if actor == nil {
		respondError(c, http.StatusForbidden, "You are not authorized to perform this action")
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, user)
}

// currentUserBots handles GET /api/users/@me/bots
func (h *handlers) currentUserBots(c *gin.Context) {
	actor := identity(c)
	if actor == nil {
		respondError(c, http.StatusForbidden, "You are not authorized to perform this action")
		return
	}

	bots, err := h.svc.BotsByUser(c.Request.Context(), actor, actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, bots)
}

// getUser handles GET /api/users/:id
func (h *handlers) getUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, user)
}

// userBots handles GET /api/users/:id/bots
func (h *handlers) userBots(c *gin.Context) {
	bots, err := h.svc.BotsByUser(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, bots)
}

// banUser handles PUT /api/users/:id/ban
func (h *handlers) banUser(c *gin.Context) {
	if err := h.svc.BanUser(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// unbanUser handles DELETE /api/users/:id/ban
func (h *handlers) unbanUser(c *gin.Context) {
	if err := h.svc.UnbanUser(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// banRoster handles GET /api/bans
func (h *handlers) banRoster(c *gin.Context) {
	roster, err := h.svc.BanRoster(c.Request.Context(), identity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, roster)
}
