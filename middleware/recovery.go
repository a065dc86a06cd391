package middleware

import (
	"fmt"
	"net/http"
	rtdebug "runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery converts panics into a 500 response. With debug enabled the
// response carries the message and stack trace; otherwise only a generic
// error body leaves the process.
func Recovery(debug bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := fmt.Sprintf("%v", recovered)
		logrus.WithField("panic", msg).Error("unhandled error")
		if debug {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": msg,
				"stack": string(rtdebug.Stack()),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
