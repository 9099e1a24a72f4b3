package web

import (
	"net/http"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/gin-gonic/gin"
)

// submitBot handles POST /api/bots
func (h *handlers) submitBot(c *gin.Context) {
	actor := identity(c)
	if actor == nil {
		respondError(c, http.StatusForbidden, "You are not authorized to perform this action")
		return
	}

	var candidate models.Bot
	if err := c.ShouldBindJSON(&candidate); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	bot, err := h.svc.Submit(c.Request.Context(), actor, &candidate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, bot)
}

// listBots handles GET /api/bots
func (h *handlers) listBots(c *gin.Context) {
	bots, err := h.svc.List(c.Request.Context(), identity(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, bots)
}

// getBot handles GET /api/bots/:id
func (h *handlers) getBot(c *gin.Context) {
	bot, err := h.svc.Get(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, bot)
}

// deleteBot handles DELETE /api/bots/:id
func (h *handlers) deleteBot(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// moderateBot handles PATCH /api/bots/:id/manage
func (h *handlers) moderateBot(c *gin.Context) {
	var body struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.Moderate(c.Request.Context(), identity(c), c.Param("id"), botlist.ModerationAction(body.Action), body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// resubmitBot handles PATCH /api/bots/:id/resubmit
func (h *handlers) resubmitBot(c *gin.Context) {
	if err := h.svc.Resubmit(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// voteBot handles POST /api/bots/:id/vote
func (h *handlers) voteBot(c *gin.Context) {
	if err := h.svc.CastVote(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// reviewBot handles POST /api/bots/:id/comment
func (h *handlers) reviewBot(c *gin.Context) {
	var body struct {
		Comment string `json:"comment"`
		Stars   int    `json:"stars"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.SubmitReview(c.Request.Context(), identity(c), c.Param("id"), body.Stars, body.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}

// reportBot handles POST /api/bots/:id/report
func (h *handlers) reportBot(c *gin.Context) {
	var body struct {
		Topic  string `json:"topic"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.Report(c.Request.Context(), identity(c), c.Param("id"), body.Topic, body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, nil)
}
