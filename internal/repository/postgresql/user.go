package postgresql

import (
	"context"

	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO users (id, email, password_hash, role, is_first_login, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash, u.Role, u.IsFirstLogin).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, email, password_hash, role, is_first_login, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsFirstLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, email, password_hash, role, is_first_login, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsFirstLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE users
		SET password_hash = $1, is_first_login = FALSE, updated_at = NOW()
		WHERE id = $2
	`

	result, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
