// Package memory backs the storage interfaces with in-process maps. It is
// the placeholder layer the storefront runs on before a database is
// provisioned, and the double the handler tests run against.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"coffeeshop/models"
	"coffeeshop/storage"

	"github.com/google/uuid"
)

type userRecord struct {
	user              models.User
	passwordHash      string
	deletionRequested bool
}

// Store holds everything behind one RWMutex. Good enough for a placeholder
// layer; a real deployment points at the postgres package instead.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*userRecord
	byEmail   map[string]string
	orders    []models.Order
	catalog   map[string]models.MenuItem
	favorites map[string]map[string]models.FavoriteItem
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*userRecord),
		byEmail:   make(map[string]string),
		catalog:   make(map[string]models.MenuItem),
		favorites: make(map[string]map[string]models.FavoriteItem),
	}
}

// NewSeededStore returns a store preloaded with a small menu and a week of
// sample orders, so the admin surface has data to show out of the box.
func NewSeededStore() *Store {
	s := NewStore()
	s.SeedCatalog(
		models.MenuItem{ID: "espresso", Name: "Espresso", Price: 2.50, Image: "/images/espresso.jpg"},
		models.MenuItem{ID: "latte", Name: "Latte", Price: 4.00, Image: "/images/latte.jpg"},
		models.MenuItem{ID: "cappuccino", Name: "Cappuccino", Price: 3.75, Image: "/images/cappuccino.jpg"},
		models.MenuItem{ID: "mocha", Name: "Mocha", Price: 4.50, Image: "/images/mocha.jpg"},
		models.MenuItem{ID: "cold-brew", Name: "Cold Brew", Price: 3.50, Image: "/images/cold-brew.jpg"},
	)

	now := time.Now()
	ten := 10
	statuses := []string{"completed", "completed", "completed", "preparing", "pending"}
	for i := 0; i < 14; i++ {
		item := []string{"Latte", "Espresso", "Cappuccino", "Mocha", "Cold Brew"}[i%5]
		price := []float64{4.00, 2.50, 3.75, 4.50, 3.50}[i%5]
		qty := 1 + i%3
		s.SeedOrder(models.Order{
			ID:            uuid.NewString(),
			Items:         []models.OrderItem{{Name: item, Quantity: qty, Price: price}},
			CustomerName:  "Sample Customer",
			CustomerEmail: "sample@example.com",
			Total:         price * float64(qty),
			Status:        statuses[i%len(statuses)],
			CreatedAt:     now.AddDate(0, 0, -(i % 7)),
			TimeTaken:     &ten,
		})
	}
	return s
}

// SeedCatalog adds menu items available for favoriting.
func (s *Store) SeedCatalog(items ...models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.catalog[item.ID] = item
	}
}

// SeedOrder adds an order to the admin view.
func (s *Store) SeedOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// --- UserStore ---

func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok || rec.deletionRequested {
		return nil, storage.ErrNotFound
	}
	user := rec.user
	return &user, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	rec := s.users[id]
	if rec.deletionRequested {
		return nil, "", storage.ErrNotFound
	}
	user := rec.user
	return &user, rec.passwordHash, nil
}

func (s *Store) Create(ctx context.Context, user *models.User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return storage.ErrAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	s.users[user.ID] = &userRecord{user: copied, passwordHash: passwordHash}
	s.byEmail[key] = user.ID
	return nil
}

func (s *Store) UpdateProfile(ctx context.Context, id string, patch models.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok || rec.deletionRequested {
		return nil, storage.ErrNotFound
	}

	if patch.Name != nil {
		rec.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		phone := *patch.Phone
		rec.user.Phone = &phone
	}
	if patch.Notifications != nil {
		rec.user.Preferences.Notifications = *patch.Notifications
	}
	if patch.Newsletter != nil {
		rec.user.Preferences.Newsletter = *patch.Newsletter
	}
	rec.user.UpdatedAt = time.Now()

	user := rec.user
	return &user, nil
}

func (s *Store) PasswordHash(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok {
		return "", storage.ErrNotFound
	}
	return rec.passwordHash, nil
}

func (s *Store) UpdatePassword(ctx context.Context, id string, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	rec.passwordHash = hash
	rec.user.UpdatedAt = time.Now()
	return nil
}

func (s *Store) RequestDeletion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok || rec.deletionRequested {
		return storage.ErrNotFound
	}
	rec.deletionRequested = true
	return nil
}

// --- OrderStore ---

func (s *Store) ListOrders(ctx context.Context, status string, page, limit int) ([]models.Order, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if status == "" || order.Status == status {
			filtered = append(filtered, order)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

// --- CustomerStore ---

func (s *Store) ListCustomers(ctx context.Context, page, limit int) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0)
	for _, rec := range s.users {
		if rec.user.Role != models.RoleCustomer || rec.deletionRequested {
			continue
		}
		customer := models.Customer{
			ID:        rec.user.ID,
			Name:      rec.user.Name,
			Email:     rec.user.Email,
			CreatedAt: rec.user.CreatedAt,
		}
		for _, order := range s.orders {
			if order.CustomerEmail != rec.user.Email {
				continue
			}
			customer.TotalOrders++
			customer.TotalSpent += order.Total
			if customer.LastOrderDate == nil || order.CreatedAt.After(*customer.LastOrderDate) {
				created := order.CreatedAt
				customer.LastOrderDate = &created
			}
		}
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})

	start := (page - 1) * limit
	if start > len(customers) {
		start = len(customers)
	}
	end := start + limit
	if end > len(customers) {
		end = len(customers)
	}
	return customers[start:end], nil
}

// --- SalesStore ---

func (s *Store) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	s.mu.RLock()
	counts := make(map[string]int)
	var stats models.DashboardStats
	for _, order := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += order.Total
		for _, item := range order.Items {
			counts[item.Name] += item.Quantity
		}
		if stats.SalesDateRange == nil {
			stats.SalesDateRange = &models.DateRange{Start: order.CreatedAt, End: order.CreatedAt}
		} else {
			if order.CreatedAt.Before(stats.SalesDateRange.Start) {
				stats.SalesDateRange.Start = order.CreatedAt
			}
			if order.CreatedAt.After(stats.SalesDateRange.End) {
				stats.SalesDateRange.End = order.CreatedAt
			}
		}
	}
	for _, rec := range s.users {
		if rec.user.Role == models.RoleCustomer && !rec.deletionRequested {
			stats.TotalCustomers++
		}
	}
	s.mu.RUnlock()

	stats.PopularItems = make([]models.PopularItem, 0, len(counts))
	for name, count := range counts {
		stats.PopularItems = append(stats.PopularItems, models.PopularItem{Name: name, Count: count})
	}
	sort.Slice(stats.PopularItems, func(i, j int) bool {
		if stats.PopularItems[i].Count != stats.PopularItems[j].Count {
			return stats.PopularItems[i].Count > stats.PopularItems[j].Count
		}
		return stats.PopularItems[i].Name < stats.PopularItems[j].Name
	})
	if len(stats.PopularItems) > 5 {
		stats.PopularItems = stats.PopularItems[:5]
	}

	recent, _, err := s.ListOrders(ctx, "", 1, 5)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent

	return &stats, nil
}

func (s *Store) Report(ctx context.Context, start, end *time.Time) (*models.SalesReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := models.SalesReport{
		StartDate: start,
		EndDate:   end,
		ByDate:    make([]models.SalesByDate, 0),
		ByItem:    make([]models.SalesByItem, 0),
	}

	days := make(map[string]*models.SalesByDate)
	items := make(map[string]*models.SalesByItem)

	for _, order := range s.orders {
		if start != nil && order.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && order.CreatedAt.After(*end) {
			continue
		}

		report.TotalOrders++
		report.TotalRevenue += order.Total

		day := order.CreatedAt.Format("2006-01-02")
		if days[day] == nil {
			days[day] = &models.SalesByDate{Date: day}
		}
		days[day].Orders++
		days[day].Revenue += order.Total

		for _, line := range order.Items {
			if items[line.Name] == nil {
				items[line.Name] = &models.SalesByItem{Name: line.Name}
			}
			items[line.Name].Quantity += line.Quantity
			items[line.Name].Revenue += float64(line.Quantity) * line.Price
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	for _, day := range days {
		report.ByDate = append(report.ByDate, *day)
	}
	sort.Slice(report.ByDate, func(i, j int) bool {
		return report.ByDate[i].Date < report.ByDate[j].Date
	})

	for _, item := range items {
		report.ByItem = append(report.ByItem, *item)
	}
	sort.Slice(report.ByItem, func(i, j int) bool {
		return report.ByItem[i].Revenue > report.ByItem[j].Revenue
	})

	return &report, nil
}

// --- FavoriteStore ---

func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]models.FavoriteItem, 0)
	for _, fav := range s.favorites[userID] {
		favorites = append(favorites, fav)
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].AddedAt.After(favorites[j].AddedAt)
	})
	return favorites, nil
}

func (s *Store) Add(ctx context.Context, userID, itemID string) (*models.FavoriteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog[itemID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[string]models.FavoriteItem)
	}
	if existing, ok := s.favorites[userID][itemID]; ok {
		return &existing, nil
	}

	fav := models.FavoriteItem{
		ID:      item.ID,
		Name:    item.Name,
		Price:   item.Price,
		Image:   item.Image,
		AddedAt: time.Now(),
	}
	s.favorites[userID][itemID] = fav
	return &fav, nil
}

func (s *Store) Remove(ctx context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites[userID], itemID)
	return nil
}
