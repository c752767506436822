package factory

import "errors"

// UpdateFailedAlert é a mensagem exibida ao usuário quando a regeneração falha
const UpdateFailedAlert = "Failed to update production schedule. Please try again."

var (
	ErrUnknownField  = errors.New("unknown factory field")
	ErrInvalidNumber = errors.New("invalid numeric value")
	ErrDowntimeIndex = errors.New("downtime index out of range")
	ErrSubmitFailed  = errors.New(UpdateFailedAlert)
)
