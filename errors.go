// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider is wrapped by every UnknownProviderError.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrInvalidProvider is wrapped by every InvalidProviderError.
	ErrInvalidProvider = errors.New("invalid provider")
)

// Ensure the error types implement the error interface.
var (
	_ error = &UnknownProviderError{}
	_ error = &InvalidProviderError{}
)

// UnknownProviderError is returned when selecting a provider name that was
// never registered.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %q", e.Name)
}

func (e *UnknownProviderError) Unwrap() error {
	return ErrUnknownProvider
}

// InvalidProviderReason tells which check an InvalidProviderError failed.
type InvalidProviderReason int

const (
	// MissingLoggerMethod means the value has no logger capability at all.
	MissingLoggerMethod InvalidProviderReason = iota
	// WrongLoggerArity means the logger capability does not take exactly one argument.
	WrongLoggerArity
	// WrongLoggerSignature means the logger capability takes one argument but
	// is not func(string) Logger.
	WrongLoggerSignature
)

// InvalidProviderError is returned when registering a value that cannot act as
// a Provider.
type InvalidProviderError struct {
	Name   string
	Reason InvalidProviderReason
	// Arity is the parameter count found, set only for WrongLoggerArity.
	Arity int
}

func (e *InvalidProviderError) Error() string {
	switch e.Reason {
	case WrongLoggerArity:
		return fmt.Sprintf("logger method arity must be 1 for provider %q, got %d", e.Name, e.Arity)
	case WrongLoggerSignature:
		return fmt.Sprintf("logger method must be func(string) polylog.Logger for provider %q", e.Name)
	default:
		return fmt.Sprintf("logger method not found for provider %q", e.Name)
	}
}

func (e *InvalidProviderError) Unwrap() error {
	return ErrInvalidProvider
}
