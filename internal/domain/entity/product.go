package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio facturable.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	HSNCode     string
	Price       decimal.Decimal // precio de venta sugerido
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
