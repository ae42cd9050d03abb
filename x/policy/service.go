package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/webgrove/gatecrest/core"
)

type service struct {
	keeper Keeper
}

func NewService(keeper Keeper) core.PolicyService {
	return &service{keeper}
}

// Upsert validates the policy and hands it to the tenant's keeper.
// A policy that fails validation is rejected here and never stored.
func (s *service) Upsert(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Upsert")
	defer span.End()

	normalized, err := validate(policy)
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, err
	}

	return s.keeper.Upsert(ctx, normalized)
}

func (s *service) ListAll(ctx context.Context, tenantID string) ([]core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.ListAll")
	defer span.End()

	if tenantID == "" {
		return nil, core.NewErrorValidation("tenant id is required")
	}

	return s.keeper.ListAll(ctx, tenantID)
}

func (s *service) CountByTenant(ctx context.Context) (map[string]int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.CountByTenant")
	defer span.End()

	return s.keeper.CountByTenant(ctx)
}

// validate checks the policy against the schema registered for its
// criteria type and normalizes the grant (claims deduplicated, sorted).
func validate(policy core.AccessPolicy) (core.AccessPolicy, error) {
	if policy.ID == "" {
		return policy, core.NewErrorValidation("policy id is required")
	}
	if policy.TenantID == "" {
		return policy, core.NewErrorValidation("tenant id is required")
	}

	if err := core.ValidateCriteria(policy.CriteriaType, policy.Criteria); err != nil {
		return policy, err
	}

	grant, err := policy.Grant()
	if err != nil {
		return policy, core.NewErrorValidation("malformed access grant: " + err.Error())
	}

	if !grant.TokenType.IsValid() {
		return policy, core.NewErrorValidation(fmt.Sprintf("unknown tokenType: %s", grant.TokenType))
	}

	if len(grant.Claims) == 0 {
		return policy, core.NewErrorValidation("access grant requires at least one claim")
	}
	for _, claim := range grant.Claims {
		if claim == "" {
			return policy, core.NewErrorValidation("access grant claims must be non-empty strings")
		}
	}

	slices.Sort(grant.Claims)
	grant.Claims = slices.Compact(grant.Claims)

	access, err := json.Marshal(grant)
	if err != nil {
		return policy, core.NewErrorValidation("malformed access grant: " + err.Error())
	}
	policy.Access = string(access)

	return policy, nil
}
