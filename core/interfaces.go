//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/labstack/echo/v4"
)

type PolicyService interface {
	Upsert(ctx context.Context, policy AccessPolicy) (AccessPolicy, error)
	ListAll(ctx context.Context, tenantID string) ([]AccessPolicy, error)
	CountByTenant(ctx context.Context) (map[string]int64, error)
}

type AllowlistService interface {
	Contains(ctx context.Context, key string, subject string) (bool, error)
	Add(ctx context.Context, key string, subjects []string) error
	Remove(ctx context.Context, key string, subjects []string) error
	List(ctx context.Context, key string) ([]string, error)
}

type AttestationService interface {
	Verify(ctx context.Context, envelope AttestationEnvelope) VerifyResult
}

type EvaluatorService interface {
	Evaluate(ctx context.Context, request AuthorizationRequest, policies []AccessPolicy) (AccessGrant, error)
}

type IssuerService interface {
	Issue(ctx context.Context, grant AccessGrant, request AuthorizationRequest) (Credential, error)
}

type AuthService interface {
	Authorize(ctx context.Context, tenantID string, request AuthorizationRequest) (Credential, error)
	Restrict(next echo.HandlerFunc) echo.HandlerFunc
}
