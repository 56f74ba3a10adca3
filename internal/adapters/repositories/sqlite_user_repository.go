package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vacation-planner-service/internal/domain"
)

// SQLite-backed implementation of the UserRepository port.
type SqliteUserRepository struct{ DB *sql.DB }

func NewSqliteUserRepository(db *sql.DB) *SqliteUserRepository {
	return &SqliteUserRepository{DB: db}
}

const userColumns = `
	user_id,
	name,
	email,
	password_hash,
	home_base,
	created_at,
	updated_at,
	deleted_at
`

func (s *SqliteUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if s.DB == nil {
		return errors.New("sqlite user repository: DB is nil")
	}
	if user == nil {
		return errors.New("create user: user must be non-nil")
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
	INSERT INTO users (user_id, name, email, password_hash, home_base, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.HomeBase,
		timeToDB(user.CreatedAt),
		timeToDB(user.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create user: insert: %w", err)
	}

	return nil
}

// GetUserByEmail returns the user or nil when no account matches.
func (s *SqliteUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite user repository: DB is nil")
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? AND deleted_at IS NULL;`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

// GetUser returns the user or nil when it does not exist.
func (s *SqliteUserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite user repository: DB is nil")
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ? AND deleted_at IS NULL;`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	return user, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user      domain.User
		createdAt string
		updatedAt string
		deletedAt sql.NullString
	)

	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.HomeBase,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	if user.CreatedAt, err = timeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if user.UpdatedAt, err = timeFromDB(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	if user.DeletedAt, err = nullTimeFromDB(deletedAt); err != nil {
		return nil, fmt.Errorf("parse deleted_at: %w", err)
	}

	return &user, nil
}
