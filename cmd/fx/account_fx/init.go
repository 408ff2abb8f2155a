package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"roamio/internal/repositories"
	"roamio/internal/services"
	mem "roamio/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore, provideAccountRepo, provideAccountService)

func provideSessionStore() mem.SessionStore {
	return mem.NewSessionTokens()
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, sessions mem.SessionStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, sessions)
}
