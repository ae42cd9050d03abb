package allowlist

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/webgrove/gatecrest/core"
)

var tracer = otel.Tracer("allowlist")

type Repository interface {
	Contains(ctx context.Context, key string, member string) (bool, error)
	Add(ctx context.Context, key string, members []string) error
	Remove(ctx context.Context, key string, members []string) error
	List(ctx context.Context, key string) ([]string, error)
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) Contains(ctx context.Context, key string, member string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Allowlist.Repository.Contains")
	defer span.End()

	ok, err := r.rdb.SIsMember(ctx, "allowlist:"+key, member).Result()
	if err != nil {
		span.RecordError(err)
		return false, core.NewErrorStore(err)
	}

	return ok, nil
}

func (r *repository) Add(ctx context.Context, key string, members []string) error {
	ctx, span := tracer.Start(ctx, "Allowlist.Repository.Add")
	defer span.End()

	args := make([]interface{}, 0, len(members))
	for _, member := range members {
		args = append(args, member)
	}

	err := r.rdb.SAdd(ctx, "allowlist:"+key, args...).Err()
	if err != nil {
		span.RecordError(err)
		return core.NewErrorStore(err)
	}

	return nil
}

func (r *repository) Remove(ctx context.Context, key string, members []string) error {
	ctx, span := tracer.Start(ctx, "Allowlist.Repository.Remove")
	defer span.End()

	args := make([]interface{}, 0, len(members))
	for _, member := range members {
		args = append(args, member)
	}

	err := r.rdb.SRem(ctx, "allowlist:"+key, args...).Err()
	if err != nil {
		span.RecordError(err)
		return core.NewErrorStore(err)
	}

	return nil
}

func (r *repository) List(ctx context.Context, key string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Allowlist.Repository.List")
	defer span.End()

	members, err := r.rdb.SMembers(ctx, "allowlist:"+key).Result()
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorStore(err)
	}

	return members, nil
}
