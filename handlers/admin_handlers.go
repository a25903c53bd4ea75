package handlers

import "coffeeshop/storage"

// AdminHandler serves the admin reporting surface. It only reads; nothing on
// this surface mutates data.
type AdminHandler struct {
	Orders    storage.OrderStore
	Customers storage.CustomerStore
	Sales     storage.SalesStore
}

// NewAdminHandler builds an AdminHandler over the admin-facing stores.
func NewAdminHandler(orders storage.OrderStore, customers storage.CustomerStore, sales storage.SalesStore) *AdminHandler {
	return &AdminHandler{Orders: orders, Customers: customers, Sales: sales}
}
