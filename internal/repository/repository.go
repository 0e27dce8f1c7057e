package repository

import "gorm.io/gorm"

// Repositories groups the store-backed repositories the services depend on.
// Every backend (GORM, MongoDB) provides the full set.
type Repositories struct {
	Restaurants RestaurantRepository
	Menus       MenuRepository
	MenuItems   MenuItemRepository
	Users       UserRepository
	Admins      AdminRepository
	Logs        LogRepository
}

// NewGormRepositories builds GORM-backed repositories sharing one handle.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Restaurants: NewRestaurantRepository(db),
		Menus:       NewMenuRepository(db),
		MenuItems:   NewMenuItemRepository(db),
		Users:       NewUserRepository(db),
		Admins:      NewAdminRepository(db),
		Logs:        NewLogRepository(db),
	}
}
