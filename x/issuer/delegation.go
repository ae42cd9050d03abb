package issuer

import (
	"context"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/xid"

	"github.com/webgrove/gatecrest/core"
)

// DelegationPayload is the signed portion of a capability delegation
// artifact. It binds the delegate, the target resource, and the
// delegated capability set under a bounded validity window.
type DelegationPayload struct {
	Issuer       string   `cbor:"iss"`
	Audience     string   `cbor:"aud"`
	Resource     string   `cbor:"rsc"`
	Capabilities []string `cbor:"cap"`
	Expiration   int64    `cbor:"exp"`
	Nonce        string   `cbor:"nnc"`
}

// DelegationEnvelope is the transport framing of an artifact: the
// canonical-CBOR payload bytes plus a recoverable signature over them.
type DelegationEnvelope struct {
	Payload   []byte `cbor:"payload"`
	Signature []byte `cbor:"signature"`
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// issueDelegation constructs the opaque delegation artifact. The bound
// resource comes from the grant's metadata, falling back to the target
// resource supplied in the request context.
func (s *service) issueDelegation(ctx context.Context, grant core.AccessGrant, request core.AuthorizationRequest) (core.Credential, error) {
	ctx, span := tracer.Start(ctx, "Issuer.Service.IssueDelegation")
	defer span.End()

	resource := grant.Metadata[core.MetadataSpaceKey]
	if resource == "" {
		resource = request.Context.Space
	}

	expiresAt := time.Now().Add(s.config.DelegationLifetime())

	payload, err := encMode.Marshal(DelegationPayload{
		Issuer:       s.config.IssuerDID,
		Audience:     request.SubjectID,
		Resource:     resource,
		Capabilities: grant.Claims,
		Expiration:   expiresAt.Unix(),
		Nonce:        xid.New().String(),
	})
	if err != nil {
		span.RecordError(err)
		return core.Credential{}, core.NewErrorIssuance(err)
	}

	signature, err := core.SignBytes(payload, s.config.PrivateKey)
	if err != nil {
		span.RecordError(err)
		return core.Credential{}, core.NewErrorIssuance(err)
	}

	artifact, err := encMode.Marshal(DelegationEnvelope{
		Payload:   payload,
		Signature: signature,
	})
	if err != nil {
		span.RecordError(err)
		return core.Credential{}, core.NewErrorIssuance(err)
	}

	return core.Credential{
		Type: core.TokenTypeCapability,
		Delegation: &core.IssuedDelegation{
			Artifact:      artifact,
			Length:        len(artifact),
			ExpiresAt:     expiresAt,
			BoundResource: resource,
		},
	}, nil
}

// DecodeDelegation parses an artifact back into its payload, verifying
// the embedded signature against the given issuer DID. Credential
// consumers and tests use this; the issuance path never does.
func DecodeDelegation(artifact []byte, issuer string) (DelegationPayload, error) {
	var envelope DelegationEnvelope
	err := cbor.Unmarshal(artifact, &envelope)
	if err != nil {
		return DelegationPayload{}, err
	}

	err = core.VerifySignature(envelope.Payload, envelope.Signature, issuer)
	if err != nil {
		return DelegationPayload{}, err
	}

	var payload DelegationPayload
	err = cbor.Unmarshal(envelope.Payload, &payload)
	if err != nil {
		return DelegationPayload{}, err
	}

	return payload, nil
}
