package store

import (
	"errors"

	"github.com/Under67/stellar-burgers/internal/common"
)

var (
	ErrNoBun              = errors.New("choose a bun before placing the order")
	ErrNotAuthenticated   = errors.New("log in to place an order")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
)

// inputError is a form that failed validation; msg is shown to the user
// as is.
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return common.ErrInvalidInput.Error() + ": " + e.msg
}

func (e *inputError) Unwrap() error {
	return common.ErrInvalidInput
}

func invalidInput(err error) error {
	return &inputError{msg: err.Error()}
}
