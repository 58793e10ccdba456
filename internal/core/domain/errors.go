package domain

import "errors"

var (
	// ErrNotFound is returned when an operation references an entity
	// (product, review, cart line or order) that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when checkout is entered with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingFields is returned when a checkout step is advanced with
	// required fields left blank. It deliberately does not name the field.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrNoCheckout is returned when a checkout operation runs without an
	// active session.
	ErrNoCheckout = errors.New("no active checkout session")

	// ErrBadTransition is returned on an order status change the status
	// table does not allow.
	ErrBadTransition = errors.New("invalid status transition")
)
