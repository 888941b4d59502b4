package repository

import "gorm.io/gorm"

type Repository struct {
	DB             *gorm.DB
	Tx             TxRunner
	Users          UserRepo
	Addresses      AddressRepo
	Products       ProductRepo
	Customizations CustomizationRepo
	Cart           CartRepo
	Orders         OrderRepo
	OrderItems     OrderItemRepo
	Payments       PaymentRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:             db,
		Tx:             NewTxRunner(db),
		Users:          NewUserRepo(db),
		Addresses:      NewAddressRepo(db),
		Products:       NewProductRepo(db),
		Customizations: NewCustomizationRepo(db),
		Cart:           NewCartRepo(db),
		Orders:         NewOrderRepo(db),
		OrderItems:     NewOrderItemRepo(db),
		Payments:       NewPaymentRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
