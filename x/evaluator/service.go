// Package evaluator resolves at most one applicable access grant for a
// request against a tenant's policy list.
package evaluator

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/webgrove/gatecrest/core"
)

var tracer = otel.Tracer("evaluator")

type service struct {
	allowlist   core.AllowlistService
	attestation core.AttestationService
}

func NewService(allowlist core.AllowlistService, attestation core.AttestationService) core.EvaluatorService {
	return &service{allowlist, attestation}
}

// Evaluate scans policies in store order; earlier policies win. A
// satisfied policy whose grant offers a different token type than the
// request asked for is skipped, not a denial: a later policy may still
// match. No match at all is a denial, never a default-allow.
func (s *service) Evaluate(ctx context.Context, request core.AuthorizationRequest, policies []core.AccessPolicy) (core.AccessGrant, error) {
	ctx, span := tracer.Start(ctx, "Evaluator.Service.Evaluate")
	defer span.End()

	for _, policy := range policies {
		if !s.satisfies(ctx, policy, request) {
			continue
		}

		grant, err := policy.Grant()
		if err != nil {
			// stored policies are validated at write time; a decode
			// failure here only disqualifies this policy
			span.RecordError(err)
			continue
		}

		if grant.TokenType != request.TokenType {
			span.AddEvent("token type mismatch, continuing scan")
			continue
		}

		span.SetAttributes(attribute.String("matchedPolicy", policy.ID))
		return grant, nil
	}

	return core.AccessGrant{}, core.NewErrorDenied()
}

// satisfies tests one policy's criteria against the request. A failure
// to evaluate one policy never aborts the scan; it only leaves this
// policy unsatisfied.
func (s *service) satisfies(ctx context.Context, policy core.AccessPolicy, request core.AuthorizationRequest) bool {
	switch policy.CriteriaType {
	case core.CriteriaTypeEnvRule:
		criteria, err := policy.EnvRule()
		if err != nil {
			return false
		}
		ok, err := s.allowlist.Contains(ctx, criteria.WhitelistEnvKey, request.SubjectID)
		if err != nil {
			// fail closed: an unreadable allow-list satisfies nothing
			trace.SpanFromContext(ctx).RecordError(err)
			return false
		}
		return ok

	case core.CriteriaTypeEasRule:
		criteria, err := policy.EasRule()
		if err != nil {
			return false
		}
		envelope := request.Context.Attestation
		if envelope == nil {
			return false
		}
		result := s.attestation.Verify(ctx, *envelope)
		if !result.IsValid {
			return false
		}
		document, err := envelope.Decode()
		if err != nil {
			return false
		}
		if document.SchemaID != criteria.SchemaID {
			return false
		}
		value, ok := document.Data[criteria.Field]
		return ok && value == request.SubjectID

	default:
		return false
	}
}
