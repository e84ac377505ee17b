package cataloging

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de catálogo
var (
	ErrProductIDRequired = errors.New("product ID is required")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidCost       = errors.New("invalid product cost")

	ErrProductNotFound      = errors.New("product not found")
	ErrVariantNotFound      = errors.New("variant not found")
	ErrProductAlreadyExists = errors.New("product already exists")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// CatalogError é um erro com contexto adicional para produtos e custos
type CatalogError struct {
	Err       error
	Code      string
	ProductID string
	Details   string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCatalogErrorWithID(err error, code string, productID string, details string) *CatalogError {
	return &CatalogError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
