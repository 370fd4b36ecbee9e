package billing

import (
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/pricing"
)

// Flow flujo de edición desde el que se invoca el motor.
type Flow string

const (
	FlowCreate Flow = "create"
	FlowEdit   Flow = "edit"
)

// ParseFlow convierte el parámetro de consulta; vacío equivale a create.
func ParseFlow(s string) (Flow, error) {
	switch Flow(s) {
	case "", FlowCreate:
		return FlowCreate, nil
	case FlowEdit:
		return FlowEdit, nil
	}
	return "", fmt.Errorf("%w: flujo %q", domain.ErrInvalidInput, s)
}

// AllowsTaxMode indica si el flujo acepta el modo. reverse_inclusive solo existe al crear.
func (f Flow) AllowsTaxMode(mode pricing.TaxMode) bool {
	if !mode.Valid() {
		return false
	}
	return f == FlowCreate || mode != pricing.TaxReverseInclusive
}

// TaxModeFor valida el modo recibido para el flujo.
func (f Flow) TaxModeFor(raw string) (pricing.TaxMode, error) {
	mode := pricing.TaxMode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: modo de impuesto %q", domain.ErrInvalidInput, raw)
	}
	if !f.AllowsTaxMode(mode) {
		return "", fmt.Errorf("%w: %s en flujo %s", domain.ErrTaxModeNotAllowed, mode, f)
	}
	return mode, nil
}
