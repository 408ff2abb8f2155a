package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error)
	Logout(refreshToken string)
	GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    mem.SessionStore
}

func NewAccountService(accountRepo repositories.AccountRepository, sessions mem.SessionStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueTokens(account.ID.String())
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error) {
	accountID := a.sessions.Consume(refreshToken)
	if accountID == "" {
		return nil, utils.ErrSessionExpired
	}

	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return a.issueTokens(accountID)
}

func (a *AccountService) Logout(refreshToken string) {
	a.sessions.Invalidate(refreshToken)
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

func (a *AccountService) issueTokens(accountID string) (*response_models.TokenResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	access, err := utils.CreateToken(id)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	refresh, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	a.sessions.Create(refresh, accountID, refreshTokenTTL)

	return &response_models.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
