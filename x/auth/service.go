// Package auth is the boundary of the authorization engine: it accepts
// an authorization request, drives the evaluator over the tenant's
// policy set, and returns a credential or a denial.
package auth

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/webgrove/gatecrest/core"
)

var tracer = otel.Tracer("auth")

type service struct {
	policy    core.PolicyService
	evaluator core.EvaluatorService
	issuer    core.IssuerService
	config    core.Config
}

func NewService(policy core.PolicyService, evaluator core.EvaluatorService, issuer core.IssuerService, config core.Config) core.AuthService {
	return &service{policy, evaluator, issuer, config}
}

// Authorize drives one request end to end. A store read failure is
// surfaced as an error, never treated as an empty policy list; denial
// is a normal outcome, distinct from failure.
func (s *service) Authorize(ctx context.Context, tenantID string, request core.AuthorizationRequest) (core.Credential, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authorize")
	defer span.End()

	if tenantID == "" {
		return core.Credential{}, core.NewErrorValidation("tenant id is required")
	}
	if request.SubjectID == "" {
		return core.Credential{}, core.NewErrorValidation("subjectId is required")
	}
	if !request.TokenType.IsValid() {
		return core.Credential{}, core.NewErrorValidation(fmt.Sprintf("unknown tokenType: %s", request.TokenType))
	}

	span.SetAttributes(
		attribute.String("tenant", tenantID),
		attribute.String("subject", request.SubjectID),
		attribute.String("tokenType", string(request.TokenType)),
	)

	policies, err := s.policy.ListAll(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		return core.Credential{}, err
	}

	grant, err := s.evaluator.Evaluate(ctx, request, policies)
	if err != nil {
		return core.Credential{}, err
	}

	return s.issuer.Issue(ctx, grant, request)
}
