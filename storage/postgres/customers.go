package postgres

import (
	"context"
	"database/sql"

	"coffeeshop/models"
)

// ListCustomers returns one page of customers with their order aggregates.
func (s *Store) ListCustomers(ctx context.Context, page, limit int) ([]models.Customer, error) {
	offset := (page - 1) * limit
	query := `
        SELECT u.id, u.name, u.email,
               COUNT(o.id), COALESCE(SUM(o.total), 0), MAX(o.created_at),
               u.created_at
        FROM users u
        LEFT JOIN orders o ON o.user_id = u.id
        WHERE u.role = 'customer' AND u.deletion_requested_at IS NULL
        GROUP BY u.id
        ORDER BY u.created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var customer models.Customer
		var lastOrder sql.NullTime

		if err := rows.Scan(
			&customer.ID, &customer.Name, &customer.Email,
			&customer.TotalOrders, &customer.TotalSpent, &lastOrder,
			&customer.CreatedAt,
		); err != nil {
			return nil, err
		}
		if lastOrder.Valid {
			customer.LastOrderDate = &lastOrder.Time
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
