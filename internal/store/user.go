package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateUserParams struct {
	Username     string
	FullName     string
	Email        string
	PasswordHash string
}

const sqlCreateUser = `
INSERT INTO users (username, full_name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, username, full_name, email, password_hash, is_active, created_at`

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, params.Username, params.FullName, params.Email, params.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", translateError(err))
	}
	return user, nil
}

const sqlGetUserByLogin = `
SELECT id, username, full_name, email, password_hash, is_active, created_at
FROM users
WHERE (LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1))
  AND is_active = TRUE`

// GetUserByLogin finds an active user by username or email
func (s *Store) GetUserByLogin(ctx context.Context, login string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByLogin, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by login", err)
		return User{}, fmt.Errorf("failed to get user by login: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, username, full_name, email, password_hash, is_active, created_at
FROM users
WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlUpdateUserPassword = `
UPDATE users SET password_hash = $2 WHERE id = $1`

func (s *Store) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateUserPassword, userID, passwordHash)
	if err != nil {
		s.logger.Error(ctx, "failed to update user password", err)
		return fmt.Errorf("failed to update user password: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
