// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package fiberlog connects fiber applications to a polylog registry.
//
// The middleware resolves the logger for a configured name on every request,
// so switching the active provider takes effect on the next request, and
// exposes it to handlers through the request user context.
package fiberlog
