package policy

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/webgrove/gatecrest/core"
)

var tracer = otel.Tracer("policy")

const listCacheTTL = 600 // seconds

type Repository interface {
	Upsert(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error)
	ListAll(ctx context.Context, tenantID string) ([]core.AccessPolicy, error)
	CountByTenant(ctx context.Context) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func listCacheKey(tenantID string) string {
	return "policies:" + tenantID
}

// Upsert replaces-by-id within the tenant. A replaced policy keeps its
// original seq so its evaluation priority does not change.
func (r *repository) Upsert(ctx context.Context, policy core.AccessPolicy) (core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Upsert")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing core.AccessPolicy
		err := tx.Where("tenant_id = ? AND id = ?", policy.TenantID, policy.ID).First(&existing).Error
		if err == nil {
			policy.Seq = existing.Seq
			policy.CDate = existing.CDate
			return tx.Model(&core.AccessPolicy{}).
				Where("tenant_id = ? AND id = ?", policy.TenantID, policy.ID).
				Updates(map[string]any{
					"criteria_type": policy.CriteriaType,
					"criteria":      policy.Criteria,
					"access":        policy.Access,
				}).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var maxSeq int64
		err = tx.Model(&core.AccessPolicy{}).
			Where("tenant_id = ?", policy.TenantID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error
		if err != nil {
			return err
		}

		policy.Seq = maxSeq + 1
		return tx.Create(&policy).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.AccessPolicy{}, core.NewErrorStore(err)
	}

	err = r.mc.Delete(listCacheKey(policy.TenantID))
	if err != nil && err != memcache.ErrCacheMiss {
		// the cache entry expires on its own; a failed invalidation is
		// not a store failure
		slog.Warn("failed to invalidate policy list cache", "error", err)
	}

	return policy, nil
}

// ListAll returns the tenant's full policy set in insertion order.
func (r *repository) ListAll(ctx context.Context, tenantID string) ([]core.AccessPolicy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.ListAll")
	defer span.End()

	item, err := r.mc.Get(listCacheKey(tenantID))
	if err == nil {
		var policies []core.AccessPolicy
		err = json.Unmarshal(item.Value, &policies)
		if err == nil {
			span.AddEvent("cache hit")
			return policies, nil
		}
	}

	var policies []core.AccessPolicy
	err = r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("seq asc").
		Find(&policies).Error
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorStore(err)
	}

	cached, err := json.Marshal(policies)
	if err == nil {
		err = r.mc.Set(&memcache.Item{Key: listCacheKey(tenantID), Value: cached, Expiration: listCacheTTL})
		if err != nil {
			slog.Warn("failed to cache policy list", "error", err)
		}
	}

	return policies, nil
}

func (r *repository) CountByTenant(ctx context.Context) (map[string]int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.CountByTenant")
	defer span.End()

	var rows []struct {
		TenantID string
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&core.AccessPolicy{}).
		Select("tenant_id, count(*) as count").
		Group("tenant_id").
		Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorStore(err)
	}

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.TenantID] = row.Count
	}

	return counts, nil
}
