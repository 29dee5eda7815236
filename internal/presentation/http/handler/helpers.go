package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorhouse/garage-invoicing/pkg/apperror"
)

// renderError writes a plain error response with the status carried by the
// error, defaulting to 500 for anything that is not an AppError
func renderError(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= http.StatusInternalServerError {
		c.Error(err)
	}
	c.String(appErr.Code, appErr.Message)
}
