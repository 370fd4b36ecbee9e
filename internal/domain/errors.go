package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores de facturación.
var (
	ErrNoValidItems        = errors.New("la factura no tiene líneas válidas")
	ErrTaxModeNotAllowed   = errors.New("modo de impuesto no permitido en este flujo")
	ErrInvalidDiscount     = errors.New("descuento inválido")
	ErrPaymentOutOfRange   = errors.New("el monto pagado debe estar entre 0 y el total")
	ErrPaymentInconsistent = errors.New("el estado de pago no corresponde al monto pagado")
)
