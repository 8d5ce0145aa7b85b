// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package api_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/api"
	"github.com/manasse33/etravel/internal/backoffice/account"
	"github.com/manasse33/etravel/internal/backoffice/audit"
	"github.com/manasse33/etravel/internal/booking"
	"github.com/manasse33/etravel/internal/catalog"
	"github.com/manasse33/etravel/internal/editor"
	"github.com/manasse33/etravel/internal/platform/config"
	"github.com/manasse33/etravel/internal/platform/sec"
)

type rejectAllVerifier struct{}

func (rejectAllVerifier) VerifyToken(string) (*sec.AuthClaims, error) {
	return nil, errors.New("token verification is disabled in tests")
}

/*
TestNewServer_RouteRegistration verifies the full route tree assembles with
every handler set wired in. chi rejects overlapping mount patterns by
panicking, so without this test a conflicting route addition only surfaces
when the process boots.
*/
func TestNewServer_RouteRegistration(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	healthy := func() error { return nil }
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: healthy,
		CheckCache:    healthy,
	}, logger)

	// Route registration never dereferences the services, so nil services
	// are enough to exercise the mount layout.
	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Catalog:      catalog.NewHandler(nil),
		Booking:      booking.NewHandler(nil),
		Account:      account.NewHandler(nil),
		Editor:       editor.NewHandler(nil),
		CatalogAdmin: catalog.NewAdminHandler(nil),
		Audit:        audit.NewHandler(nil),
	}

	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var server *api.Server
	require.NotPanics(t, func() {
		server = api.NewServer(ctx, cfg, logger, rejectAllVerifier{}, handlers)
	})
	require.NotNil(t, server)
}
