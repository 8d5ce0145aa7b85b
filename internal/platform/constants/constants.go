// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

/*
Package constants centralizes the immutable values shared across the
Etravel back-office service.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and token lifetime.
  - Upstream: Conventions of the remote Etravel REST API.
  - Redis Prefixes: Key taxonomy for sessions and cache entries.

Keeping these here eliminates magic strings and numbers from the
business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "etravel-backoffice"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "etravel.app"

	// AccessTokenTTL bounds how long a back-office login stays valid.
	AccessTokenTTL = 8 * time.Hour
)

// # Upstream API Conventions

const (
	// MethodOverrideField simulates PUT over POST for the upstream router.
	MethodOverrideField = "_method"

	// MethodOverridePut is the only override value the upstream accepts.
	MethodOverridePut = "PUT"

	// ImageField is the multipart field name for the optional image part.
	ImageField = "image"
)

// # Edit Sessions

const (
	// EditSessionTTL is how long an abandoned edit session survives in Redis.
	EditSessionTTL = 2 * time.Hour

	// MaxImageBytes caps the size of an image attached to an edit session.
	MaxImageBytes = 5 << 20
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Key Taxonomy)

const (
	RedisPrefixEditSession = "backoffice:session:"
	RedisPrefixCatalog     = "catalog:cache:"
)

// # Catalog Cache

const (
	// CatalogCacheTTL bounds staleness of cached upstream listings.
	CatalogCacheTTL = 5 * time.Minute
)
