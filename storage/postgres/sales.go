package postgres

import (
	"context"
	"database/sql"
	"time"

	"coffeeshop/models"
)

// DashboardStats aggregates the admin dashboard summary.
func (s *Store) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := s.db.QueryRow(ctx, "SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders").Scan(&stats.TotalOrders, &stats.TotalRevenue); err != nil {
		return nil, err
	}

	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE role = 'customer' AND deletion_requested_at IS NULL").Scan(&stats.TotalCustomers); err != nil {
		return nil, err
	}

	popularQuery := `
        SELECT item_name, SUM(quantity) AS sold
        FROM order_items
        GROUP BY item_name
        ORDER BY sold DESC
        LIMIT 5`
	rows, err := s.db.Query(ctx, popularQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.PopularItems = make([]models.PopularItem, 0)
	for rows.Next() {
		var item models.PopularItem
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, err
		}
		stats.PopularItems = append(stats.PopularItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, _, err := s.ListOrders(ctx, "", 1, 5)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent

	var first, last sql.NullTime
	if err := s.db.QueryRow(ctx, "SELECT MIN(created_at), MAX(created_at) FROM orders").Scan(&first, &last); err != nil {
		return nil, err
	}
	if first.Valid && last.Valid {
		stats.SalesDateRange = &models.DateRange{Start: first.Time, End: last.Time}
	}

	return &stats, nil
}

// Report aggregates sales between start and end. Either bound may be nil.
func (s *Store) Report(ctx context.Context, start, end *time.Time) (*models.SalesReport, error) {
	report := models.SalesReport{
		StartDate: start,
		EndDate:   end,
		ByDate:    make([]models.SalesByDate, 0),
		ByItem:    make([]models.SalesByItem, 0),
	}

	// An open bound is replaced by a value outside any plausible order date.
	lo := time.Time{}
	hi := time.Now().AddDate(100, 0, 0)
	if start != nil {
		lo = *start
	}
	if end != nil {
		hi = *end
	}

	totalsQuery := `
        SELECT COUNT(*), COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at BETWEEN $1 AND $2`
	if err := s.db.QueryRow(ctx, totalsQuery, lo, hi).Scan(&report.TotalOrders, &report.TotalRevenue); err != nil {
		return nil, err
	}
	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	byDateQuery := `
        SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD'), COUNT(*), COALESCE(SUM(total), 0)
        FROM orders
        WHERE created_at BETWEEN $1 AND $2
        GROUP BY DATE(created_at)
        ORDER BY DATE(created_at)`
	rows, err := s.db.Query(ctx, byDateQuery, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day models.SalesByDate
		if err := rows.Scan(&day.Date, &day.Orders, &day.Revenue); err != nil {
			return nil, err
		}
		report.ByDate = append(report.ByDate, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byItemQuery := `
        SELECT oi.item_name, SUM(oi.quantity), COALESCE(SUM(oi.quantity * oi.price), 0)
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.created_at BETWEEN $1 AND $2
        GROUP BY oi.item_name
        ORDER BY SUM(oi.quantity * oi.price) DESC`
	itemRows, err := s.db.Query(ctx, byItemQuery, lo, hi)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.SalesByItem
		if err := itemRows.Scan(&item.Name, &item.Quantity, &item.Revenue); err != nil {
			return nil, err
		}
		report.ByItem = append(report.ByItem, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return &report, nil
}
