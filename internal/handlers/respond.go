package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/kyamane/remote-work-api/internal/errors"
	"github.com/kyamane/remote-work-api/internal/services"
)

// respondServiceError translates service errors into the API error taxonomy.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidDueEpoch):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		apierrors.StoreUnavailable(c, err.Error())
	case errors.Is(err, services.ErrIndexDivergence):
		apierrors.IndexDivergence(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
