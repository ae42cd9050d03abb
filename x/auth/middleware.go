package auth

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/webgrove/gatecrest/core"
	"github.com/webgrove/gatecrest/x/jwt"
)

// Restrict guards the administration surface. It accepts a bearer token
// signed by one of the configured admin identities.
func (s *service) Restrict(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Restrict")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authorization header is required"})
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 {
			span.RecordError(fmt.Errorf("invalid authorization header"))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization header"})
		}

		authType, token := split[0], split[1]
		if authType != "Bearer" {
			span.RecordError(fmt.Errorf("only Bearer is acceptable"))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "only Bearer is acceptable"})
		}

		claims, err := jwt.Validate(token)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		if claims.Audience != s.config.FQDN {
			span.RecordError(fmt.Errorf("token is not for this domain"))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token is not for this domain"})
		}

		if !slices.Contains(s.config.Admins, claims.Issuer) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "you are not authorized to perform this action"})
		}

		span.SetAttributes(attribute.String("admin", claims.Issuer))
		c.Set(core.AdminIdCtxKey, claims.Issuer)
		c.Set(core.AdminClaimsCtxKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
