// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config reads the polylog settings from the environment and the
// provider declarations from YAML files, and applies them to a registry.
package config
