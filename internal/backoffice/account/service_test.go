// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasse33/etravel/internal/backoffice/account"
	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/sec"
)

// memoryRepository is an in-memory Repository for tests.
type memoryRepository struct {
	accounts map[string]*account.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: make(map[string]*account.Account)}
}

func (repo *memoryRepository) FindByID(_ context.Context, id string) (*account.Account, error) {
	found, ok := repo.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return found, nil
}

func (repo *memoryRepository) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	for _, candidate := range repo.accounts {
		if candidate.Username == username {
			return candidate, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repo *memoryRepository) List(_ context.Context) ([]*account.Account, error) {
	all := make([]*account.Account, 0, len(repo.accounts))
	for _, candidate := range repo.accounts {
		all = append(all, candidate)
	}
	return all, nil
}

func (repo *memoryRepository) Create(_ context.Context, created *account.Account) error {
	for _, candidate := range repo.accounts {
		if candidate.Username == created.Username {
			return apperr.Conflict("Resource already exists")
		}
	}
	repo.accounts[created.ID] = created
	return nil
}

func (repo *memoryRepository) SetActive(_ context.Context, id string, active bool) error {
	found, ok := repo.accounts[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	found.Active = active
	return nil
}

// staticTokenProvider returns a fixed token.
type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(_, _, _ string, _ time.Duration) (string, error) {
	return "token-123", nil
}

func newTestService() (*account.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return account.NewService(repo, staticTokenProvider{}), repo
}

/*
TestService_RegisterAndLogin verifies enrollment hashes the password and the
round trip through login succeeds.
*/
func TestService_RegisterAndLogin(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Register(context.Background(), account.RegisterInput{
		Username:    "fatou",
		Password:    "correct horse battery",
		DisplayName: "Fatou Sall",
		Role:        sec.RoleEditor,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "correct horse battery", created.PasswordHash)
	assert.True(t, created.Active)

	result, err := service.Login(context.Background(), "fatou", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "token-123", result.AccessToken)
	assert.Equal(t, created.ID, result.Account.ID)
}

/*
TestService_Login_BadCredentials verifies unknown usernames and wrong
passwords return the same opaque error.
*/
func TestService_Login_BadCredentials(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), account.RegisterInput{
		Username: "fatou", Password: "correct horse battery", Role: sec.RoleEditor,
	})
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), "nobody", "whatever")
	_, wrongErr := service.Login(context.Background(), "fatou", "wrong password")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, "UNAUTHORIZED", apperr.As(wrongErr).Code)
}

/*
TestService_Login_Deactivated verifies deactivated accounts cannot sign in.
*/
func TestService_Login_Deactivated(t *testing.T) {
	service, repo := newTestService()

	created, err := service.Register(context.Background(), account.RegisterInput{
		Username: "fatou", Password: "correct horse battery", Role: sec.RoleAgent,
	})
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(context.Background(), created.ID, false))

	_, err = service.Login(context.Background(), "fatou", "correct horse battery")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_Register_DuplicateUsername verifies the uniqueness rule.
*/
func TestService_Register_DuplicateUsername(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), account.RegisterInput{
		Username: "fatou", Password: "correct horse battery", Role: sec.RoleEditor,
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), account.RegisterInput{
		Username: "fatou", Password: "another password!", Role: sec.RoleAgent,
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_SetActive_SelfLockout verifies an admin cannot deactivate their
own account.
*/
func TestService_SetActive_SelfLockout(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Register(context.Background(), account.RegisterInput{
		Username: "admin", Password: "correct horse battery", Role: sec.RoleAdmin,
	})
	require.NoError(t, err)

	err = service.SetActive(context.Background(), created.ID, created.ID, false)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// Reactivating yourself is fine (no-op in practice).
	assert.NoError(t, service.SetActive(context.Background(), created.ID, created.ID, true))
}
