// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package cmd holds the polylog sub commands used to inspect and exercise a
// provider configuration.
package cmd
