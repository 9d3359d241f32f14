package handlers

import (
	"github.com/gin-gonic/gin"

	"stagelink/services/svcerr"
	"stagelink/utils"
)

// respondData writes the standard success envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError maps a service-layer error onto its HTTP status and the
// standard error envelope.
func respondError(c *gin.Context, err error) {
	utils.JSONError(c, svcerr.HTTPStatus(err), svcerr.MessageOf(err), "")
}
