package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Shops() ShopRepository
	Promos() PromoRepository
	Laundries() LaundryRepository
}
