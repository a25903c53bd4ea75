package postgres

import (
	"context"
	"errors"

	"coffeeshop/models"
	"coffeeshop/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ListByUser returns the catalog items a user has favorited.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	query := `
        SELECT m.id, m.name, m.price, m.image, f.added_at
        FROM favorites f
        JOIN menu_items m ON m.id = f.item_id
        WHERE f.user_id = $1
        ORDER BY f.added_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.FavoriteItem, 0)
	for rows.Next() {
		var fav models.FavoriteItem
		if err := rows.Scan(&fav.ID, &fav.Name, &fav.Price, &fav.Image, &fav.AddedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Add favorites a catalog item for a user. Re-adding is a no-op.
func (s *Store) Add(ctx context.Context, userID, itemID string) (*models.FavoriteItem, error) {
	insert := `
        INSERT INTO favorites (user_id, item_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, item_id) DO NOTHING`
	if _, err := s.db.Exec(ctx, insert, userID, itemID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	query := `
        SELECT m.id, m.name, m.price, m.image, f.added_at
        FROM favorites f
        JOIN menu_items m ON m.id = f.item_id
        WHERE f.user_id = $1 AND f.item_id = $2`

	var fav models.FavoriteItem
	err := s.db.QueryRow(ctx, query, userID, itemID).Scan(&fav.ID, &fav.Name, &fav.Price, &fav.Image, &fav.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &fav, nil
}

// Remove unfavorites a catalog item. Removing an absent entry is a no-op.
func (s *Store) Remove(ctx context.Context, userID, itemID string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM favorites WHERE user_id = $1 AND item_id = $2", userID, itemID)
	return err
}
