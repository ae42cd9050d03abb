package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCriteria(t *testing.T) {

	// Test1. well-formed env-rule
	err := ValidateCriteria(CriteriaTypeEnvRule, `{"whitelistEnvKey": "PREMIUM_USERS"}`)
	assert.NoError(t, err)

	// Test2. env-rule missing its key
	err = ValidateCriteria(CriteriaTypeEnvRule, `{}`)
	assert.Error(t, err)

	// Test3. env-rule with an unknown field is rejected
	err = ValidateCriteria(CriteriaTypeEnvRule, `{"whitelistEnvKey": "PREMIUM_USERS", "extra": true}`)
	assert.Error(t, err)

	// Test4. well-formed eas-rule
	err = ValidateCriteria(CriteriaTypeEasRule, `{"schemaId": "0xabc", "field": "subject"}`)
	assert.NoError(t, err)

	// Test5. eas-rule missing schemaId
	err = ValidateCriteria(CriteriaTypeEasRule, `{"field": "subject"}`)
	assert.Error(t, err)

	// Test6. eas-rule missing field
	err = ValidateCriteria(CriteriaTypeEasRule, `{"schemaId": "0xabc"}`)
	assert.Error(t, err)

	// Test7. unknown criteria type
	err = ValidateCriteria("time-rule", `{}`)
	assert.Error(t, err)

	// Test8. malformed json
	err = ValidateCriteria(CriteriaTypeEnvRule, `{"whitelistEnvKey":`)
	assert.Error(t, err)
}

func TestCriteriaAccessors(t *testing.T) {

	envPolicy := AccessPolicy{
		ID:           "p1",
		TenantID:     "tenant1",
		CriteriaType: CriteriaTypeEnvRule,
		Criteria:     `{"whitelistEnvKey": "BETA_TESTERS"}`,
	}

	criteria, err := envPolicy.EnvRule()
	if assert.NoError(t, err) {
		assert.Equal(t, "BETA_TESTERS", criteria.WhitelistEnvKey)
	}

	// decoding under the wrong variant is an error
	_, err = envPolicy.EasRule()
	assert.Error(t, err)

	easPolicy := AccessPolicy{
		ID:           "p2",
		TenantID:     "tenant1",
		CriteriaType: CriteriaTypeEasRule,
		Criteria:     `{"schemaId": "0xdef", "field": "recipient"}`,
	}

	easCriteria, err := easPolicy.EasRule()
	if assert.NoError(t, err) {
		assert.Equal(t, "0xdef", easCriteria.SchemaID)
		assert.Equal(t, "recipient", easCriteria.Field)
	}
}
