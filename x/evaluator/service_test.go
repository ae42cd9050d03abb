package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/webgrove/gatecrest/core"
	mock_core "github.com/webgrove/gatecrest/core/mock"
)

func envPolicy(id string, key string, access string) core.AccessPolicy {
	return core.AccessPolicy{
		ID:           id,
		TenantID:     "tenant1",
		CriteriaType: core.CriteriaTypeEnvRule,
		Criteria:     `{"whitelistEnvKey": "` + key + `"}`,
		Access:       access,
	}
}

func easPolicy(id string, schemaID string, field string, access string) core.AccessPolicy {
	return core.AccessPolicy{
		ID:           id,
		TenantID:     "tenant1",
		CriteriaType: core.CriteriaTypeEasRule,
		Criteria:     `{"schemaId": "` + schemaID + `", "field": "` + field + `"}`,
		Access:       access,
	}
}

func TestEvaluate(t *testing.T) {

	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mock_core.NewMockAllowlistService(ctrl)
	mockAttestation := mock_core.NewMockAttestationService(ctrl)

	svc := NewService(mockAllowlist, mockAttestation)

	bearerAccess := `{"tokenType": "bearer", "claims": ["read:messages"]}`
	capabilityAccess := `{"tokenType": "capability", "claims": ["write:space"], "metadata": {"space": "space1"}}`

	// Test1. allow-list member matches an env-rule policy
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "PREMIUM_USERS", "did:key:zAlice").
		Return(true, nil)

	grant, err := svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeBearer,
	}, []core.AccessPolicy{envPolicy("p1", "PREMIUM_USERS", bearerAccess)})
	if assert.NoError(t, err) {
		assert.Equal(t, core.TokenTypeBearer, grant.TokenType)
		assert.Equal(t, []string{"read:messages"}, grant.Claims)
	}

	// Test2. non-member is denied
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "PREMIUM_USERS", "did:key:zMallory").
		Return(false, nil)

	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zMallory",
		TokenType: core.TokenTypeBearer,
	}, []core.AccessPolicy{envPolicy("p1", "PREMIUM_USERS", bearerAccess)})
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test3. empty policy list is a denial, never a default-allow
	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeBearer,
	}, []core.AccessPolicy{})
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test4. allow-list lookup failure fails closed for that policy
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "PREMIUM_USERS", "did:key:zAlice").
		Return(false, core.NewErrorStore(errors.New("connection refused")))

	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeBearer,
	}, []core.AccessPolicy{envPolicy("p1", "PREMIUM_USERS", bearerAccess)})
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test5. earlier policies win; the second policy is never consulted
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "FIRST_LIST", "did:key:zAlice").
		Return(true, nil)

	grant, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeBearer,
	}, []core.AccessPolicy{
		envPolicy("p1", "FIRST_LIST", `{"tokenType": "bearer", "claims": ["first"]}`),
		envPolicy("p2", "SECOND_LIST", `{"tokenType": "bearer", "claims": ["second"]}`),
	})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"first"}, grant.Claims)
	}

	// Test6. a satisfied policy offering a different token type is
	// skipped and a later policy can still match
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "FIRST_LIST", "did:key:zAlice").
		Return(true, nil)
	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "SECOND_LIST", "did:key:zAlice").
		Return(true, nil)

	grant, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeCapability,
	}, []core.AccessPolicy{
		envPolicy("p1", "FIRST_LIST", bearerAccess),
		envPolicy("p2", "SECOND_LIST", capabilityAccess),
	})
	if assert.NoError(t, err) {
		assert.Equal(t, core.TokenTypeCapability, grant.TokenType)
		assert.Equal(t, "space1", grant.Metadata[core.MetadataSpaceKey])
	}
}

func TestEvaluateEasRule(t *testing.T) {

	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mock_core.NewMockAllowlistService(ctrl)
	mockAttestation := mock_core.NewMockAttestationService(ctrl)

	svc := NewService(mockAllowlist, mockAttestation)

	capabilityAccess := `{"tokenType": "capability", "claims": ["write:space"]}`
	policies := []core.AccessPolicy{easPolicy("p1", "0xschema1", "recipient", capabilityAccess)}

	envelope := core.AttestationEnvelope{
		Document:  `{"schemaId": "0xschema1", "attester": "did:key:zAttester", "data": {"recipient": "did:key:zAlice"}}`,
		Signature: "00",
	}

	// Test1. verified attestation whose field names the requester matches
	mockAttestation.EXPECT().
		Verify(gomock.Any(), envelope).
		Return(core.VerifyResult{IsValid: true})

	grant, err := svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeCapability,
		Context:   core.RequestContext{Attestation: &envelope},
	}, policies)
	if assert.NoError(t, err) {
		assert.Equal(t, core.TokenTypeCapability, grant.TokenType)
	}

	// Test2. a request without an attestation never matches an eas-rule
	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeCapability,
	}, policies)
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test3. invalid attestation is a denial
	mockAttestation.EXPECT().
		Verify(gomock.Any(), envelope).
		Return(core.VerifyResult{IsValid: false, Error: "attestation is expired"})

	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeCapability,
		Context:   core.RequestContext{Attestation: &envelope},
	}, policies)
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test4. attestation under a different schema does not match
	mockAttestation.EXPECT().
		Verify(gomock.Any(), envelope).
		Return(core.VerifyResult{IsValid: true})

	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeCapability,
		Context:   core.RequestContext{Attestation: &envelope},
	}, []core.AccessPolicy{easPolicy("p1", "0xschema2", "recipient", capabilityAccess)})
	assert.ErrorAs(t, err, &core.ErrorDenied{})

	// Test5. attestation naming someone else does not match
	mockAttestation.EXPECT().
		Verify(gomock.Any(), envelope).
		Return(core.VerifyResult{IsValid: true})

	_, err = svc.Evaluate(ctx, core.AuthorizationRequest{
		SubjectID: "did:key:zBob",
		TokenType: core.TokenTypeCapability,
		Context:   core.RequestContext{Attestation: &envelope},
	}, policies)
	assert.ErrorAs(t, err, &core.ErrorDenied{})
}

// Evaluation never mutates its inputs: running the same request twice
// over the same list yields the same grant.
func TestEvaluateIdempotent(t *testing.T) {

	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAllowlist := mock_core.NewMockAllowlistService(ctrl)
	mockAttestation := mock_core.NewMockAttestationService(ctrl)

	svc := NewService(mockAllowlist, mockAttestation)

	mockAllowlist.EXPECT().
		Contains(gomock.Any(), "PREMIUM_USERS", "did:key:zAlice").
		Return(true, nil).
		Times(2)

	policies := []core.AccessPolicy{
		envPolicy("p1", "PREMIUM_USERS", `{"tokenType": "bearer", "claims": ["read:messages"]}`),
	}
	request := core.AuthorizationRequest{
		SubjectID: "did:key:zAlice",
		TokenType: core.TokenTypeBearer,
	}

	first, err := svc.Evaluate(ctx, request, policies)
	assert.NoError(t, err)

	second, err := svc.Evaluate(ctx, request, policies)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
