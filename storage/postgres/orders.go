package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"coffeeshop/models"
)

// ListOrders returns one page of orders, optionally filtered by status, plus
// the total count matching the filter.
func (s *Store) ListOrders(ctx context.Context, status string, page, limit int) ([]models.Order, int, error) {
	var whereClauses []string
	var args []interface{}
	argCount := 1

	if status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("o.status = $%d", argCount))
		args = append(args, status)
		argCount++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM orders o " + whereClause
	var total int
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
        SELECT o.id, u.name, u.email, o.total, o.status, o.created_at, o.time_taken,
               COALESCE(json_agg(json_build_object(
                   'name', oi.item_name,
                   'quantity', oi.quantity,
                   'price', oi.price
               )) FILTER (WHERE oi.id IS NOT NULL), '[]')
        FROM orders o
        JOIN users u ON u.id = o.user_id
        LEFT JOIN order_items oi ON oi.order_id = o.id
        %s
        GROUP BY o.id, u.name, u.email
        ORDER BY o.created_at DESC
        LIMIT $%d OFFSET $%d`, whereClause, argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		var timeTaken sql.NullInt64
		var itemsJSON []byte

		if err := rows.Scan(
			&order.ID, &order.CustomerName, &order.CustomerEmail,
			&order.Total, &order.Status, &order.CreatedAt, &timeTaken, &itemsJSON,
		); err != nil {
			return nil, 0, err
		}

		if timeTaken.Valid {
			minutes := int(timeTaken.Int64)
			order.TimeTaken = &minutes
		}
		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
