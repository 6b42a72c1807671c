package middleware

import (
	"log/slog"
	"net/http"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs server side failures recorded on the context and answers
// for handlers that recorded an error without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		resp, ok := last.Meta.(httperr.Response)
		if !ok {
			resp = httperr.NewResponse(c, http.StatusInternalServerError, httperr.MessageInternal, nil)
		}
		if resp.Status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), resp.Error.Message,
				slog.String("error", last.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(last.Err, stackLines)),
			)
		}

		if !c.Writer.Written() {
			c.JSON(resp.Status, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := errs.Newf("panic: %v", rec)
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				slog.String("path", c.Request.URL.Path),
				slog.Any("stack", errs.ExtractStackLines(err, stackLines)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(c, http.StatusInternalServerError, httperr.MessageInternal, nil))
		}()
		c.Next()
	}
}
