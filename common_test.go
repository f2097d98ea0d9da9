// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

// taggedLogger is a discarding logger distinguishable by identity and tag.
type taggedLogger struct {
	NullLogger
	tag string
}

func newTagged(tag string) *taggedLogger {
	return &taggedLogger{tag: tag}
}

// tagOf returns the tag of logger, or the empty string for other loggers.
func tagOf(logger Logger) string {
	if tagged, ok := logger.(*taggedLogger); ok {
		return tagged.tag
	}
	return ""
}
