package services

import (
	"errors"

	"github.com/HemanthA0921/Ecommerce-React/repository"
)

var (
	// ErrNotFound mirrors repository.ErrNotFound so callers only deal with
	// service-level errors.
	ErrNotFound = repository.ErrNotFound

	ErrInvalidPeriod     = errors.New("invalid time period")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrInsufficientStock = errors.New("insufficient stock")
)
