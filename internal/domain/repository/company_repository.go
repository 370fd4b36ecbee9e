package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByGSTIN(gstin string) (*entity.Company, error)
}
