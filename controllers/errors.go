package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/longkovipb52/TaloFood-App-sub000/pkg/resp"
	"github.com/longkovipb52/TaloFood-App-sub000/services"
)

// respondErr maps the service error taxonomy onto HTTP. Store errors stay
// behind a generic message.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c)
	}
}
