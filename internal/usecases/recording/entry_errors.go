package recording

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de registros diários
var (
	// Erros de validação
	ErrEntryIDRequired = errors.New("entry ID is required")
	ErrInvalidEntry    = errors.New("invalid entry")
	ErrEmptyPatch      = errors.New("no fields to update")
	ErrInvalidCSV      = errors.New("invalid CSV file")

	// Erros de recurso
	ErrEntryNotFound   = errors.New("entry not found")
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchEntries      = errors.New("error fetching entries from database")

	ErrGenerateID = errors.New("error generating ID")
)

// EntryError é um erro com contexto adicional para registros
type EntryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	EntryID string // ID do registro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError cria um novo EntryError
func NewEntryError(err error, code string, details string) *EntryError {
	return &EntryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewEntryErrorWithID cria um novo EntryError com o ID do registro
func NewEntryErrorWithID(err error, code string, entryID string, details string) *EntryError {
	return &EntryError{
		Err:     err,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}
