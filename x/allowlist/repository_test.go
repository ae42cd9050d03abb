package allowlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webgrove/gatecrest/core"
	"github.com/webgrove/gatecrest/internal/testutil"
)

func TestRepository(t *testing.T) {

	ctx := context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	repo := NewRepository(rdb)

	// Test1. membership in an empty list
	ok, err := repo.Contains(ctx, "PREMIUM_USERS", "did:key:zAlice")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Test2. add and look up
	err = repo.Add(ctx, "PREMIUM_USERS", []string{"did:key:zAlice", "did:key:zBob"})
	assert.NoError(t, err)

	ok, err = repo.Contains(ctx, "PREMIUM_USERS", "did:key:zAlice")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Contains(ctx, "PREMIUM_USERS", "did:key:zMallory")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Test3. lists are isolated by key
	ok, err = repo.Contains(ctx, "BETA_TESTERS", "did:key:zAlice")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Test4. list members
	members, err := repo.List(ctx, "PREMIUM_USERS")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"did:key:zAlice", "did:key:zBob"}, members)

	// Test5. remove
	err = repo.Remove(ctx, "PREMIUM_USERS", []string{"did:key:zBob"})
	assert.NoError(t, err)

	ok, err = repo.Contains(ctx, "PREMIUM_USERS", "did:key:zBob")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceStaticUnion(t *testing.T) {

	ctx := context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	svc := NewService(NewRepository(rdb), core.Config{
		Allowlists: map[string][]string{
			"OPERATORS": {"did:key:zRoot"},
		},
	})

	// Test1. statically configured members are visible without any write
	ok, err := svc.Contains(ctx, "OPERATORS", "did:key:zRoot")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Test2. dynamic members union with static ones
	err = svc.Add(ctx, "OPERATORS", []string{"did:key:zAlice"})
	assert.NoError(t, err)

	members, err := svc.List(ctx, "OPERATORS")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"did:key:zRoot", "did:key:zAlice"}, members)

	// Test3. static members cannot be removed dynamically
	err = svc.Remove(ctx, "OPERATORS", []string{"did:key:zRoot"})
	assert.NoError(t, err)

	ok, err = svc.Contains(ctx, "OPERATORS", "did:key:zRoot")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Test4. empty subject slice is a validation error
	err = svc.Add(ctx, "OPERATORS", []string{})
	assert.ErrorAs(t, err, &core.ErrorValidation{})

	err = svc.Remove(ctx, "OPERATORS", nil)
	assert.ErrorAs(t, err, &core.ErrorValidation{})
}
