package models

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses; anything
// else surfaces as a 500 "Server Error".
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadySeller      = errors.New("user is already a seller")
	ErrDuplicateRequest   = errors.New("a seller request is already pending")
	ErrNoPendingRequest   = errors.New("no pending seller request")
	ErrInvalidStatus      = errors.New("invalid book status")
	ErrSellerNotFound     = errors.New("seller not found")
	ErrForbidden          = errors.New("insufficient permissions")
)
