package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByLogin(ctx context.Context, login string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
