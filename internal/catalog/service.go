// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/manasse33/etravel/internal/gateway"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/pkg/slice"
)

// Upstream is the slice of the gateway client the catalog reads through.
type Upstream interface {
	List(ctx context.Context, resource string) ([]*gateway.Record, error)
	Get(ctx context.Context, resource string, id int) (*gateway.Record, error)
}

// sections whitelists the browsable resources. Reservations are write-only
// and never listed publicly.
var sections = map[string]string{
	"countries": gateway.ResourceCountries,
	"cities":    gateway.ResourceCities,
	"packages":  gateway.ResourcePackages,
	"weekends":  gateway.ResourceWeekends,
	"tours":     gateway.ResourceTours,
}

// ListFilter narrows a section listing. Zero values mean "no filter".
type ListFilter struct {
	CountryID int
	CityID    int
}

// Service serves the public catalog: upstream reads, Redis caching, view
// projection.
type Service struct {
	upstream Upstream
	cache    *redis.Client
	logger   *slog.Logger
}

// NewService constructs a catalog [Service].
func NewService(upstream Upstream, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{upstream: upstream, cache: cache, logger: logger}
}

// ParseSection resolves a public section name to its upstream resource.
func ParseSection(raw string) (string, error) {
	resource, ok := sections[raw]
	if !ok {
		return "", apperr.NotFound("Catalog section")
	}
	return resource, nil
}

/*
List returns the offers of a section, cache-first.

Description: The full upstream listing is cached per resource; filters are
applied after the cache so one cache entry serves every filter combination.

Parameters:
  - ctx: context.Context
  - resource: string
  - filter: ListFilter

Returns:
  - []Offer: Projected offers
  - error: Upstream failures (cache failures only degrade)
*/
func (service *Service) List(ctx context.Context, resource string, filter ListFilter) ([]Offer, error) {
	records, err := service.listRecords(ctx, resource)
	if err != nil {
		return nil, err
	}

	if filter.CountryID != 0 {
		records = slice.Filter(records, func(record *gateway.Record) bool {
			return record.CountryID != nil && *record.CountryID == filter.CountryID
		})
	}
	if filter.CityID != 0 {
		records = slice.Filter(records, func(record *gateway.Record) bool {
			return record.CityID != nil && *record.CityID == filter.CityID
		})
	}

	return slice.Map(records, func(record *gateway.Record) Offer {
		return NewOffer(record)
	}), nil
}

// Get returns one offer by identity. Detail reads bypass the cache; they are
// rare compared to listings and must reflect a just-submitted edit.
func (service *Service) Get(ctx context.Context, resource string, id int) (*Offer, error) {
	record, err := service.upstream.Get(ctx, resource, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.NotFound("Record")
	}

	offer := NewOffer(record)
	return &offer, nil
}

// listRecords serves the raw listing from Redis when fresh, falling back to
// the upstream. A cold or broken cache degrades to a direct upstream read;
// it never fails the request.
func (service *Service) listRecords(ctx context.Context, resource string) ([]*gateway.Record, error) {
	key := constants.RedisPrefixCatalog + resource

	cached, err := service.cache.Get(ctx, key).Bytes()
	if err == nil {
		var records []*gateway.Record
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		// Poisoned entry; refetch below and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		service.logger.Warn("catalog_cache_read_failed",
			slog.String("resource", resource),
			slog.Any("error", err),
		)
	}

	records, err := service.upstream.List(ctx, resource)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(records); err == nil {
		if err := service.cache.Set(ctx, key, encoded, constants.CatalogCacheTTL).Err(); err != nil {
			service.logger.Warn("catalog_cache_write_failed",
				slog.String("resource", resource),
				slog.Any("error", err),
			)
		}
	}

	return records, nil
}

// Invalidate drops the cached listing of a resource. Called after a
// back-office submission so public pages pick the change up immediately
// instead of waiting out the TTL.
func (service *Service) Invalidate(ctx context.Context, resource string) {
	key := constants.RedisPrefixCatalog + resource
	if err := service.cache.Del(ctx, key).Err(); err != nil {
		service.logger.Warn("catalog_cache_invalidate_failed",
			slog.String("resource", resource),
			slog.Any("error", err),
		)
	}
}
