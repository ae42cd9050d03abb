package policy

import (
	"context"
	"sync"

	"github.com/webgrove/gatecrest/core"
)

// Keeper routes all access to one tenant's policy set through a single
// goroutine, so concurrent requests observe a serialized view of
// appends: no dirty read of a partially written policy, and appends are
// applied in the order received. Different tenants are fully
// independent. Workers live for the process lifetime.
type Keeper interface {
	Upsert(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error)
	ListAll(ctx context.Context, tenantID string) ([]core.AccessPolicy, error)
	CountByTenant(ctx context.Context) (map[string]int64, error)
}

type keeper struct {
	repository Repository
	mu         sync.Mutex
	tenants    map[string]chan storeRequest
}

func NewKeeper(repository Repository) Keeper {
	return &keeper{
		repository: repository,
		tenants:    make(map[string]chan storeRequest),
	}
}

type storeRequest struct {
	ctx    context.Context
	policy *core.AccessPolicy // nil means list
	reply  chan storeReply
}

type storeReply struct {
	policy   core.AccessPolicy
	policies []core.AccessPolicy
	err      error
}

func (k *keeper) channel(tenantID string) chan storeRequest {
	k.mu.Lock()
	defer k.mu.Unlock()

	ch, ok := k.tenants[tenantID]
	if !ok {
		ch = make(chan storeRequest)
		k.tenants[tenantID] = ch
		go k.worker(tenantID, ch)
	}
	return ch
}

func (k *keeper) worker(tenantID string, ch chan storeRequest) {
	for request := range ch {
		var reply storeReply
		if request.policy != nil {
			reply.policy, reply.err = k.repository.Upsert(request.ctx, *request.policy)
		} else {
			reply.policies, reply.err = k.repository.ListAll(request.ctx, tenantID)
		}
		// reply channels are buffered; a caller that gave up never
		// blocks the worker
		request.reply <- reply
	}
}

func (k *keeper) dispatch(ctx context.Context, tenantID string, request storeRequest) (storeReply, error) {
	ch := k.channel(tenantID)

	select {
	case ch <- request:
	case <-ctx.Done():
		return storeReply{}, ctx.Err()
	}

	select {
	case reply := <-request.reply:
		return reply, nil
	case <-ctx.Done():
		return storeReply{}, ctx.Err()
	}
}

func (k *keeper) Upsert(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Keeper.Upsert")
	defer span.End()

	reply, err := k.dispatch(ctx, policy.TenantID, storeRequest{
		ctx:    ctx,
		policy: &policy,
		reply:  make(chan storeReply, 1),
	})
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, err
	}
	if reply.err != nil {
		span.RecordError(reply.err)
		return core.AccessPolicy{}, reply.err
	}

	return reply.policy, nil
}

func (k *keeper) ListAll(ctx context.Context, tenantID string) ([]core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Keeper.ListAll")
	defer span.End()

	reply, err := k.dispatch(ctx, tenantID, storeRequest{
		ctx:   ctx,
		reply: make(chan storeReply, 1),
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if reply.err != nil {
		span.RecordError(reply.err)
		return nil, reply.err
	}

	return reply.policies, nil
}

// CountByTenant is a metrics-only read across all tenants; it bypasses
// the per-tenant serialization point.
func (k *keeper) CountByTenant(ctx context.Context) (map[string]int64, error) {
	return k.repository.CountByTenant(ctx)
}
