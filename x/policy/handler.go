// Package policy is the durable, tenant-isolated store of access
// policies. This engine validates policies but does not author them;
// the handler is the administration surface.
package policy

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webgrove/gatecrest/core"
)

type Handler interface {
	Upsert(c echo.Context) error
	List(c echo.Context) error
}

type handler struct {
	service core.PolicyService
}

func NewHandler(service core.PolicyService) Handler {
	return &handler{service}
}

func (h *handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Upsert")
	defer span.End()

	var policy core.AccessPolicy
	err := c.Bind(&policy)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	policy.TenantID = c.Param("tenant")
	policy.ID = c.Param("id")

	created, err := h.service.Upsert(ctx, policy)
	if err != nil {
		span.RecordError(err)
		var validation core.ErrorValidation
		if errors.As(err, &validation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": created})
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.List")
	defer span.End()

	policies, err := h.service.ListAll(ctx, c.Param("tenant"))
	if err != nil {
		span.RecordError(err)
		var validation core.ErrorValidation
		if errors.As(err, &validation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policies})
}
