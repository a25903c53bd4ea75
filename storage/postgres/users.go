package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"coffeeshop/models"
	"coffeeshop/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, name, email, phone, role, notifications, newsletter,
       total_orders, total_spent, favorite_item, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var phone, favoriteItem sql.NullString

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &phone, &user.Role,
		&user.Preferences.Notifications, &user.Preferences.Newsletter,
		&user.Stats.TotalOrders, &user.Stats.TotalSpent, &favoriteItem,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	if phone.Valid {
		user.Phone = &phone.String
	}
	if favoriteItem.Valid {
		user.Stats.FavoriteItem = &favoriteItem.String
	}
	return &user, nil
}

// GetByID returns the profile for a user.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 AND deletion_requested_at IS NULL"
	return scanUser(s.db.QueryRow(ctx, query, id))
}

// GetByEmail returns the profile and password hash for a user.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	query := "SELECT " + userColumns + ", password_hash FROM users WHERE email = $1 AND deletion_requested_at IS NULL"

	var user models.User
	var phone, favoriteItem sql.NullString
	var passwordHash string

	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &phone, &user.Role,
		&user.Preferences.Notifications, &user.Preferences.Newsletter,
		&user.Stats.TotalOrders, &user.Stats.TotalSpent, &favoriteItem,
		&user.CreatedAt, &user.UpdatedAt,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", storage.ErrNotFound
		}
		return nil, "", err
	}

	if phone.Valid {
		user.Phone = &phone.String
	}
	if favoriteItem.Valid {
		user.Stats.FavoriteItem = &favoriteItem.String
	}
	return &user, passwordHash, nil
}

// Create inserts a new user with the given password hash.
func (s *Store) Create(ctx context.Context, user *models.User, passwordHash string) error {
	query := `
        INSERT INTO users (id, name, email, phone, role, password_hash, notifications, newsletter)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at
    `
	err := s.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.Role, passwordHash,
		user.Preferences.Notifications, user.Preferences.Newsletter,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateProfile applies a partial update and returns the merged record.
func (s *Store) UpdateProfile(ctx context.Context, id string, patch models.ProfileUpdate) (*models.User, error) {
	var setParts []string
	var args []interface{}
	argID := 1

	if patch.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argID))
		args = append(args, *patch.Name)
		argID++
	}
	if patch.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argID))
		args = append(args, *patch.Phone)
		argID++
	}
	if patch.Notifications != nil {
		setParts = append(setParts, fmt.Sprintf("notifications = $%d", argID))
		args = append(args, *patch.Notifications)
		argID++
	}
	if patch.Newsletter != nil {
		setParts = append(setParts, fmt.Sprintf("newsletter = $%d", argID))
		args = append(args, *patch.Newsletter)
		argID++
	}

	if len(setParts) == 0 {
		return s.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING "+userColumns,
		strings.Join(setParts, ", "), argID,
	)
	args = append(args, id)

	return scanUser(s.db.QueryRow(ctx, query, args...))
}

// PasswordHash returns the stored hash for a user.
func (s *Store) PasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := s.db.QueryRow(ctx, "SELECT password_hash FROM users WHERE id = $1", id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return hash, nil
}

// UpdatePassword replaces the stored hash for a user.
func (s *Store) UpdatePassword(ctx context.Context, id string, hash string) error {
	tag, err := s.db.Exec(ctx, "UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2", hash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// RequestDeletion marks an account for asynchronous deletion.
func (s *Store) RequestDeletion(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "UPDATE users SET deletion_requested_at = NOW() WHERE id = $1 AND deletion_requested_at IS NULL", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
