package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes data wrapped in the {"success": true, "data": ...}
// envelope every endpoint responds with.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the failure envelope carrying a human-readable message.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
