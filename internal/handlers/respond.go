package handlers

import "github.com/gin-gonic/gin"

// apiResponse is the wire envelope every endpoint returns. A failed mutation
// never reports success: handlers only emit Success=1 after the service layer
// returned without error.
type apiResponse struct {
	Success int    `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, apiResponse{Success: 1, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: 0, Message: message, Data: gin.H{}})
}
