package services

import (
	"errors"
	"fmt"
	"strings"
)

// Setup errors: the scenario cannot be scheduled at all.
var (
	ErrNoTrains             = errors.New("no trains")
	ErrInsufficientCapacity = errors.New("insufficient train capacity")
	ErrInvalidNetwork       = errors.New("invalid network")
	ErrUnknownStrategy      = errors.New("unknown strategy")
)

// Runtime errors: scheduling started but some packages cannot be delivered.
var (
	ErrUnreachablePackage = errors.New("unreachable package")
	ErrUndelivered        = errors.New("undelivered packages")
)

// DeliveryError names the packages a strategy failed to deliver.
// It unwraps to ErrUnreachablePackage or ErrUndelivered.
type DeliveryError struct {
	Strategy Strategy
	Packages []string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Strategy, e.Err, strings.Join(e.Packages, ","))
}

func (e *DeliveryError) Unwrap() error { return e.Err }
