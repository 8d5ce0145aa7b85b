// Copyright (c) 2026 Etravel. All rights reserved.
// Author: manasse33@outlook.fr

package account

import (
	"context"
	"time"

	"github.com/manasse33/etravel/internal/platform/apperr"
	"github.com/manasse33/etravel/internal/platform/constants"
	"github.com/manasse33/etravel/internal/platform/sec"
	"github.com/manasse33/etravel/pkg/uuidv7"
)

// TokenProvider defines the contract for issuing access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements staff account use cases: sign-in, enrollment, and
// activation management.
type Service struct {
	repository    Repository
	tokenProvider TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, tokenProvider TokenProvider) *Service {
	return &Service{repository: repository, tokenProvider: tokenProvider}
}

// LoginResult carries the issued token and the signed-in account.
type LoginResult struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	Account     *Account `json:"account"`
}

/*
Login authenticates a staff member by username and password.

Description: Failed lookups and failed password checks return the same
Unauthorized error so responses never reveal which usernames exist.

Parameters:
  - ctx: context.Context
  - username: string
  - password: string

Returns:
  - *LoginResult: Token and account on success
  - error: Unauthorized on bad credentials or deactivated accounts
*/
func (service *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	invalid := apperr.Unauthorized("Invalid username or password")

	found, err := service.repository.FindByUsername(ctx, username)
	if err != nil {
		return nil, invalid
	}

	if !sec.CheckPasswordHash(password, found.PasswordHash) {
		return nil, invalid
	}

	if !found.Active {
		return nil, apperr.Unauthorized("This account has been deactivated")
	}

	token, err := service.tokenProvider.GenerateAccessToken(
		found.ID,
		found.Username,
		string(found.Role),
		constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int(constants.AccessTokenTTL.Seconds()),
		Account:     found,
	}, nil
}

// RegisterInput holds the data required to enroll a new staff member.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        sec.Role
}

/*
Register creates a new staff account. Admin only; the HTTP layer enforces
the role, the service enforces the data.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created account
  - error: Conflict if the username is taken, or storage failures
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Account, error) {
	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	created := &Account{
		ID:           uuidv7.New(),
		Username:     input.Username,
		PasswordHash: hash,
		DisplayName:  input.DisplayName,
		Role:         input.Role,
		Active:       true,
	}

	if err := service.repository.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// List returns every staff account.
func (service *Service) List(ctx context.Context) ([]*Account, error) {
	return service.repository.List(ctx)
}

/*
SetActive enables or disables an account.

Description: An admin cannot deactivate their own account; the back office
must always retain at least the acting admin.

Parameters:
  - ctx: context.Context
  - actorID: string
  - accountID: string
  - active: bool

Returns:
  - error: Validation, NotFound, or storage failures
*/
func (service *Service) SetActive(ctx context.Context, actorID, accountID string, active bool) error {
	if actorID == accountID && !active {
		return apperr.ValidationError("You cannot deactivate your own account")
	}
	return service.repository.SetActive(ctx, accountID, active)
}
