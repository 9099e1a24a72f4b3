package web

import (
	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/ws"
)

// SetupAPIRoutes wires every API endpoint onto the server
func SetupAPIRoutes(s *Server, svc *botlist.Service, hub *ws.Hub, resolver IdentityResolver) {
	h := &handlers{svc: svc, hub: hub}

	api := s.Group("/api")
	api.Use(authMiddleware(resolver, svc))
	{
		api.GET("/status", h.status)
		api.GET("/health", h.health)

		api.POST("/bots", h.submitBot)
		api.GET("/bots", h.listBots)
		api.GET("/bots/:id", h.getBot)
		api.DELETE("/bots/:id", h.deleteBot)
		api.PATCH("/bots/:id/manage", h.moderateBot)
		api.PATCH("/bots/:id/resubmit", h.resubmitBot)
		api.POST("/bots/:id/vote", h.voteBot)
		api.POST("/bots/:id/comment", h.reviewBot)
		api.POST("/bots/:id/report", h.reportBot)

		api.GET("/search", h.search)
		api.GET("/random/tag", h.randomTag)

		api.GET("/users/@me", h.currentUser)
		api.GET("/users/@me/bots", h.currentUserBots)
		api.GET("/users/:id", h.getUser)
		api.GET("/users/:id/bots", h.userBots)
		api.PUT("/users/:id/ban", h.banUser)
		api.DELETE("/users/:id/ban", h.unbanUser)

		api.GET("/bans", h.banRoster)
		api.GET("/live", h.liveFeed)
	}
}

// handlers holds the collaborators shared by all endpoint handlers
type handlers struct {
	svc *botlist.Service
	hub *ws.Hub
}
