package production

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParams = errors.New("invalid regeneration parameters")
	ErrRegeneration  = errors.New("failed to regenerate production schedule")
	ErrHistory       = errors.New("failed to list regeneration history")
)

// ProductionError carrega o código de erro da API junto com o erro base
type ProductionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ProductionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProductionError) Unwrap() error {
	return e.Err
}

func NewProductionError(err error, code string, details string) *ProductionError {
	return &ProductionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
