// Package attestation decides whether a caller-supplied attestation is
// currently trustworthy.
package attestation

import (
	"context"
	"encoding/hex"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/webgrove/gatecrest/core"
)

var tracer = otel.Tracer("attestation")

type service struct {
	config core.Config
}

func NewService(config core.Config) core.AttestationService {
	return &service{config}
}

// Verify checks the attestation signature first, then expiry. Malformed
// or unverifiable input yields IsValid=false with a reason; it never
// aborts the caller.
func (s *service) Verify(ctx context.Context, envelope core.AttestationEnvelope) core.VerifyResult {
	ctx, span := tracer.Start(ctx, "Attestation.Service.Verify")
	defer span.End()

	document, err := envelope.Decode()
	if err != nil {
		return s.invalid(ctx, "malformed attestation document: "+err.Error())
	}

	signature, err := hex.DecodeString(envelope.Signature)
	if err != nil {
		return s.invalid(ctx, "malformed attestation signature: "+err.Error())
	}

	authority := s.config.TrustedAttester
	if authority == "" {
		authority = document.Attester
	}
	if authority == "" {
		return s.invalid(ctx, "attestation carries no attester identity")
	}

	err = core.VerifySignature([]byte(envelope.Document), signature, authority)
	if err != nil {
		return s.invalid(ctx, "attestation signature verification failed: "+err.Error())
	}

	if document.ExpirationTime != 0 {
		expiresAt := time.Unix(document.ExpirationTime, 0)
		if !expiresAt.After(time.Now()) {
			return s.invalid(ctx, "attestation is expired")
		}
	}

	return core.VerifyResult{IsValid: true}
}

func (s *service) invalid(ctx context.Context, reason string) core.VerifyResult {
	trace.SpanFromContext(ctx).AddEvent(reason)
	return core.VerifyResult{IsValid: false, Error: reason}
}
