// Package allowlist holds the operator-maintained allow-lists consulted
// by env-rule criteria. Lists live in redis; static entries from the
// configuration are unioned in so that key material can be provisioned
// without a running redis write path.
package allowlist

import (
	"context"
	"slices"

	"github.com/webgrove/gatecrest/core"
)

type service struct {
	repository Repository
	config     core.Config
}

func NewService(repository Repository, config core.Config) core.AllowlistService {
	return &service{repository, config}
}

// Contains reports membership of subject in the list addressed by key.
// An unconfigured key is simply not a membership, never an error.
func (s *service) Contains(ctx context.Context, key string, subject string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Allowlist.Service.Contains")
	defer span.End()

	if members, ok := s.config.Allowlists[key]; ok {
		if slices.Contains(members, subject) {
			return true, nil
		}
	}

	return s.repository.Contains(ctx, key, subject)
}

func (s *service) Add(ctx context.Context, key string, subjects []string) error {
	ctx, span := tracer.Start(ctx, "Allowlist.Service.Add")
	defer span.End()

	if len(subjects) == 0 {
		return core.NewErrorValidation("no subjects given")
	}

	return s.repository.Add(ctx, key, subjects)
}

func (s *service) Remove(ctx context.Context, key string, subjects []string) error {
	ctx, span := tracer.Start(ctx, "Allowlist.Service.Remove")
	defer span.End()

	if len(subjects) == 0 {
		return core.NewErrorValidation("no subjects given")
	}

	return s.repository.Remove(ctx, key, subjects)
}

func (s *service) List(ctx context.Context, key string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Allowlist.Service.List")
	defer span.End()

	members, err := s.repository.List(ctx, key)
	if err != nil {
		return nil, err
	}

	if static, ok := s.config.Allowlists[key]; ok {
		for _, member := range static {
			if !slices.Contains(members, member) {
				members = append(members, member)
			}
		}
	}

	return members, nil
}
