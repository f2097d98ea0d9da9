// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger builds the hclog backed loggers used by the polylog CLI and by
// providers declared in configuration files.
package logger
