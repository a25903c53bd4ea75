package models

import "time"

// User roles. Admin routes require RoleAdmin; everything signed up through
// the storefront is a customer.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Preferences holds the notification toggles on a user profile.
type Preferences struct {
	Notifications bool `json:"notifications"`
	Newsletter    bool `json:"newsletter"`
}

// UserStats is the aggregate order history shown on the profile page.
type UserStats struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalSpent   float64 `json:"totalSpent"`
	FavoriteItem *string `json:"favoriteItem"`
}

// User is the profile record returned by the user endpoints.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       *string     `json:"phone,omitempty"`
	Role        string      `json:"role"`
	Preferences Preferences `json:"preferences"`
	Stats       UserStats   `json:"stats"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem is a single line on an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is the admin-facing view of a placed order.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	TimeTaken     *int        `json:"timeTaken"`
}

// Customer is the admin-facing view of a storefront customer.
type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	TotalOrders   int        `json:"totalOrders"`
	TotalSpent    float64    `json:"totalSpent"`
	LastOrderDate *time.Time `json:"lastOrderDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// MenuItem is a catalog entry a user can favorite.
type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// FavoriteItem is a catalog item pinned by a user.
type FavoriteItem struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	Image   string    `json:"image"`
	AddedAt time.Time `json:"addedAt"`
}

// PopularItem is a catalog item ranked by times ordered.
type PopularItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DateRange bounds the sales data covered by a dashboard or report.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DashboardStats is the admin dashboard summary payload.
type DashboardStats struct {
	TotalOrders    int           `json:"totalOrders"`
	TotalRevenue   float64       `json:"totalRevenue"`
	TotalCustomers int           `json:"totalCustomers"`
	PopularItems   []PopularItem `json:"popularItems"`
	RecentOrders   []Order       `json:"recentOrders"`
	SalesDateRange *DateRange    `json:"salesDateRange"`
}

// SalesByDate is one day's slice of a sales report.
type SalesByDate struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesByItem is one catalog item's slice of a sales report.
type SalesByItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SalesReport aggregates sales over an optional date range.
type SalesReport struct {
	TotalRevenue      float64       `json:"totalRevenue"`
	TotalOrders       int           `json:"totalOrders"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	ByDate            []SalesByDate `json:"byDate"`
	ByItem            []SalesByItem `json:"byItem"`
	StartDate         *time.Time    `json:"startDate,omitempty"`
	EndDate           *time.Time    `json:"endDate,omitempty"`
}

// ExportDescriptor describes a generated data export.
type ExportDescriptor struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	URL       string `json:"url"`
}
