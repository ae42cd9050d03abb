//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/webgrove/gatecrest/core"
	"github.com/webgrove/gatecrest/x/allowlist"
	"github.com/webgrove/gatecrest/x/attestation"
	"github.com/webgrove/gatecrest/x/auth"
	"github.com/webgrove/gatecrest/x/evaluator"
	"github.com/webgrove/gatecrest/x/issuer"
	"github.com/webgrove/gatecrest/x/policy"
)

var policyServiceProvider = wire.NewSet(policy.NewService, policy.NewKeeper, policy.NewRepository)
var allowlistServiceProvider = wire.NewSet(allowlist.NewService, allowlist.NewRepository)

// SetupPolicyService is built once per process: the keeper inside it is
// the per-tenant serialization point shared by the admin surface and
// the authorization path.
func SetupPolicyService(db *gorm.DB, mc *memcache.Client) core.PolicyService {
	wire.Build(policyServiceProvider)
	return nil
}

func SetupAllowlistService(rdb *redis.Client, config core.Config) core.AllowlistService {
	wire.Build(allowlistServiceProvider)
	return nil
}

func SetupAuthService(policyService core.PolicyService, allowlistService core.AllowlistService, config core.Config) core.AuthService {
	wire.Build(auth.NewService, evaluator.NewService, attestation.NewService, issuer.NewService)
	return nil
}
