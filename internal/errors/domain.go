package errors

import (
	stderrors "errors"
	"fmt"
)

// Base error kinds, matched with errors.Is.
var (
	ErrNotFound            = stderrors.New("not found")
	ErrAlreadyExists       = stderrors.New("already exists")
	ErrInsufficientBalance = stderrors.New("insufficient balance")
	ErrOutOfStock          = stderrors.New("out of stock")
	ErrNotActivated        = stderrors.New("system not activated")
	ErrInvalidInput        = stderrors.New("invalid input")
)

// DomainError carries the domain and operation that rejected a transaction.
type DomainError struct {
	Domain  string // e.g. "student", "shop", "catalog"
	Op      string
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// Is matches both the kind and the exact sentinel instance.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e == t
	}
	return e.Kind != nil && stderrors.Is(e.Kind, target)
}

// New creates a domain error of the given kind.
func New(domain, op string, kind error, message string) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message}
}

var (
	ErrStudentNotFound   = New("student", "Find", ErrNotFound, "student not found")
	ErrPetAlreadyAdopted = New("student", "Adopt", ErrAlreadyExists, "student already has a pet")
	ErrEmptyName         = New("student", "Validate", ErrInvalidInput, "name cannot be empty")

	ErrItemNotFound       = New("shop", "Find", ErrNotFound, "shop item not found")
	ErrItemOutOfStock     = New("shop", "Redeem", ErrOutOfStock, "item is out of stock")
	ErrNotEnoughMedals    = New("shop", "Redeem", ErrInsufficientBalance, "not enough medals")
	ErrRuleNotFound       = New("catalog", "Find", ErrNotFound, "point rule not found")
	ErrDuplicateID        = New("catalog", "Add", ErrAlreadyExists, "duplicate id")
	ErrSystemNotActivated = New("garden", "Gate", ErrNotActivated, "system is not activated, run 'petgarden activate <code>' first")
	ErrInvalidActivation  = New("garden", "Activate", ErrInvalidInput, "activation code is not valid")
	ErrNothingToExport    = New("records", "Export", ErrNotFound, "no growth records to export")
	ErrUnsupportedSchema  = New("state", "Load", ErrInvalidInput, "stored data was written by a newer version, please upgrade")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
