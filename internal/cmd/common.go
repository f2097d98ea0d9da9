// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mia-platform/polylog"
	"github.com/mia-platform/polylog/internal/logger"
)

var (
	errNoArguments    = errors.New("no arguments provided")
	errWrongArguments = errors.New("expected NAME and MESSAGE arguments")
	errInvalidLevel   = errors.New("invalid level provided")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidLevel), errors.Is(err, errWrongArguments):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// parseLevel parses level ignoring case, rejecting unknown names.
func parseLevel(level string) (polylog.Level, error) {
	for _, known := range polylog.AllLevels() {
		if strings.EqualFold(known.String(), level) {
			return known, nil
		}
	}
	return polylog.INFO, fmt.Errorf("%w: %s", errInvalidLevel, level)
}

// diagnostics returns the CLI logger stored in ctx, named after the package
// when it supports names. Plain hclog loggers are wrapped first.
func diagnostics(ctx context.Context) polylog.Logger {
	log := polylog.FromContext(ctx)
	switch l := log.(type) {
	case logger.Logger:
		return l.WithName(loggerName)
	case hclog.Logger:
		return logger.Wrap(l).WithName(loggerName)
	default:
		return log
	}
}
