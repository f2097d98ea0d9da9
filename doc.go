// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package polylog lets code ask for a logger for itself without depending on a
// concrete logging implementation.
//
// A Registry maps provider names to Provider values and tracks the active one.
// For resolves a name from an arbitrary value (a string, a Symbol, a type or
// an instance of a type) and asks the active provider for the logger bound to
// that name. Until a provider is selected the "null" provider is active and
// every logger discards its output.
//
//	provider := polylog.NewMultiProvider(hclog.Default())
//	provider.Set("billing.Invoice", invoiceLogger)
//
//	if _, err := polylog.RegisterProvider("app", provider); err != nil {
//		return err
//	}
//	if _, err := polylog.UseProvider("app"); err != nil {
//		return err
//	}
//
//	log := polylog.For(invoice) // invoiceLogger
package polylog
