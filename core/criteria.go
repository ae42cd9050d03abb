package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// criteriaValidators is the closed registry of criteria schemas.
// A policy whose payload does not validate against the schema registered
// for its criteriaType is rejected at write time, never at evaluation time.
var criteriaValidators = map[CriteriaType]func(raw string) error{
	CriteriaTypeEnvRule: validateEnvRuleCriteria,
	CriteriaTypeEasRule: validateEasRuleCriteria,
}

func ValidateCriteria(criteriaType CriteriaType, raw string) error {
	validator, ok := criteriaValidators[criteriaType]
	if !ok {
		return NewErrorValidation(fmt.Sprintf("unknown criteriaType: %s", criteriaType))
	}
	return validator(raw)
}

func validateEnvRuleCriteria(raw string) error {
	var criteria EnvRuleCriteria
	if err := decodeStrict(raw, &criteria); err != nil {
		return NewErrorValidation("malformed env-rule criteria: " + err.Error())
	}
	if criteria.WhitelistEnvKey == "" {
		return NewErrorValidation("env-rule criteria requires whitelistEnvKey")
	}
	return nil
}

func validateEasRuleCriteria(raw string) error {
	var criteria EasRuleCriteria
	if err := decodeStrict(raw, &criteria); err != nil {
		return NewErrorValidation("malformed eas-rule criteria: " + err.Error())
	}
	if criteria.SchemaID == "" {
		return NewErrorValidation("eas-rule criteria requires schemaId")
	}
	if criteria.Field == "" {
		return NewErrorValidation("eas-rule criteria requires field")
	}
	return nil
}

func decodeStrict(raw string, out any) error {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

// EnvRule decodes the policy's criteria payload as an env-rule variant.
func (p AccessPolicy) EnvRule() (EnvRuleCriteria, error) {
	var criteria EnvRuleCriteria
	if p.CriteriaType != CriteriaTypeEnvRule {
		return criteria, fmt.Errorf("policy %s is not an env-rule policy", p.ID)
	}
	err := json.Unmarshal([]byte(p.Criteria), &criteria)
	return criteria, err
}

// EasRule decodes the policy's criteria payload as an eas-rule variant.
func (p AccessPolicy) EasRule() (EasRuleCriteria, error) {
	var criteria EasRuleCriteria
	if p.CriteriaType != CriteriaTypeEasRule {
		return criteria, fmt.Errorf("policy %s is not an eas-rule policy", p.ID)
	}
	err := json.Unmarshal([]byte(p.Criteria), &criteria)
	return criteria, err
}
