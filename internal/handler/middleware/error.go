package middleware

import (
	"log/slog"
	"net/http"

	"studio-search/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public httperr.Response when a handler recorded an
// error without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		resp := httperr.Internal()
		c.JSON(resp.Status, resp)
	}
}

// NotFound answers unknown routes with the same JSON shape as other errors.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := httperr.New(http.StatusNotFound, httperr.CodeNotFound, "Not found", c.Request.URL.Path)
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("パニックから復帰しました",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Internal()
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
