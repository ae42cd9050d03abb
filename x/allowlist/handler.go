package allowlist

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webgrove/gatecrest/core"
)

type Handler interface {
	Get(c echo.Context) error
	Add(c echo.Context) error
	Remove(c echo.Context) error
}

type handler struct {
	service core.AllowlistService
}

func NewHandler(service core.AllowlistService) Handler {
	return &handler{service}
}

type membersRequest struct {
	Subjects []string `json:"subjects"`
}

func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Allowlist.Handler.Get")
	defer span.End()

	key := c.Param("key")
	members, err := h.service.List(ctx, key)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": members})
}

func (h *handler) Add(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Allowlist.Handler.Add")
	defer span.End()

	key := c.Param("key")

	var request membersRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err = h.service.Add(ctx, key, request.Subjects)
	if err != nil {
		span.RecordError(err)
		var validation core.ErrorValidation
		if errors.As(err, &validation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) Remove(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Allowlist.Handler.Remove")
	defer span.End()

	key := c.Param("key")

	var request membersRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err = h.service.Remove(ctx, key, request.Subjects)
	if err != nil {
		span.RecordError(err)
		var validation core.ErrorValidation
		if errors.As(err, &validation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validation.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
