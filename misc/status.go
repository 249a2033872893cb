package misc

import "github.com/gin-gonic/gin"

func StatusOK(id string) gin.H {
	if id == "" {
		return gin.H{"status": "success"}
	}
	return gin.H{"status": "success", "id": id}
}

func StatusErr(msg string) gin.H {
	return gin.H{"status": "error", "msg": msg}
}

func AbortWithErr(c *gin.Context, code int, err error) {
	c.JSON(code, StatusErr(err.Error()))
	c.Abort()
}
