// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package info holds application version information.
package info

import (
	"runtime"
)

var (
	// AppName is the name of the application.
	AppName = "polylog"
	// Version is dynamically set by the ci or overridden by the Makefile.
	Version = "DEV"
	// BuildDate is dynamically set at build time by the cli or overridden in the Makefile.
	BuildDate = "" // YYYY-MM-DD
)

// VersionInformation formats the version metadata for display.
func VersionInformation() string {
	return VersionString(Version, BuildDate, runtime.Version())
}

// VersionString formats version, buildDate and runtimeVersion for display.
func VersionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
