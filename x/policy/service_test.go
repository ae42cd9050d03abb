package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webgrove/gatecrest/core"
)

// validation rejects bad policies before they ever reach the keeper,
// so these cases run with no keeper at all
func TestServiceValidation(t *testing.T) {

	ctx := context.Background()
	svc := NewService(nil)

	valid := core.AccessPolicy{
		ID:           "p1",
		TenantID:     "tenant1",
		CriteriaType: core.CriteriaTypeEnvRule,
		Criteria:     `{"whitelistEnvKey": "LIST_A"}`,
		Access:       `{"tokenType":"bearer","claims":["read:a"]}`,
	}

	// Test1. missing id
	p := valid
	p.ID = ""
	_, err := svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test2. missing tenant
	p = valid
	p.TenantID = ""
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test3. unknown criteria type
	p = valid
	p.CriteriaType = "time-rule"
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test4. criteria payload not matching its schema
	p = valid
	p.Criteria = `{"schemaId": "0xabc", "field": "recipient"}`
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test5. malformed access grant
	p = valid
	p.Access = `{"tokenType":`
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test6. unknown token type in the grant
	p = valid
	p.Access = `{"tokenType":"refresh","claims":["read:a"]}`
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test7. grant without claims
	p = valid
	p.Access = `{"tokenType":"bearer","claims":[]}`
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test8. empty-string claim
	p = valid
	p.Access = `{"tokenType":"bearer","claims":["read:a", ""]}`
	_, err = svc.Upsert(ctx, p)
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	// Test9. listing without a tenant
	_, err = svc.ListAll(ctx, "")
	assert.ErrorAs(t, err, &core.ErrorValidation{})
}

func TestValidateNormalizesClaims(t *testing.T) {

	normalized, err := validate(core.AccessPolicy{
		ID:           "p1",
		TenantID:     "tenant1",
		CriteriaType: core.CriteriaTypeEnvRule,
		Criteria:     `{"whitelistEnvKey": "LIST_A"}`,
		Access:       `{"tokenType":"bearer","claims":["write:a","read:a","write:a"]}`,
	})
	assert.NoError(t, err)

	grant, err := normalized.Grant()
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"read:a", "write:a"}, grant.Claims)
	}
}
