package web

import (
	"net/http"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/gin-gonic/gin"
)

// envelope is the wire response shape kept for frontend compatibility.
// Internally every operation returns (T, error); this is produced at the
// edge only.
type envelope struct {
	Error   *string     `json:"error"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// respondData writes a success envelope
func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Error: nil, Success: true, Data: data})
}

// respondError writes a failure envelope with an explicit status
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Error: &message, Success: false, Data: nil})
}

// respondServiceError maps a typed operation error onto the envelope
func respondServiceError(c *gin.Context, err error) {
	respondError(c, botlist.StatusFor(err), err.Error())
}
