package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webgrove/gatecrest/core"
)

// ArtifactLengthHeader carries the delegation artifact byte length for
// transport framing.
const ArtifactLengthHeader = "Gatecrest-Artifact-Length"

type Handler interface {
	Authorize(c echo.Context) error
}

type handler struct {
	service core.AuthService
}

func NewHandler(service core.AuthService) Handler {
	return &handler{service}
}

// Authorize accepts an authorization request for a tenant and returns
// either a credential, a denial, or an error. A capability credential
// is returned as an opaque octet stream; a bearer credential as JSON.
func (h *handler) Authorize(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Authorize")
	defer span.End()

	var request core.AuthorizationRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	credential, err := h.service.Authorize(ctx, c.Param("tenant"), request)
	if err != nil {
		span.RecordError(err)

		var denied core.ErrorDenied
		if errors.As(err, &denied) {
			return c.JSON(http.StatusForbidden, echo.Map{"status": "denied"})
		}

		var validation core.ErrorValidation
		if errors.As(err, &validation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Message})
		}

		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	if credential.Type == core.TokenTypeCapability {
		c.Response().Header().Set(ArtifactLengthHeader, strconv.Itoa(credential.Delegation.Length))
		return c.Blob(http.StatusOK, "application/octet-stream", credential.Delegation.Artifact)
	}

	return c.JSON(http.StatusOK, credential.Bearer)
}
