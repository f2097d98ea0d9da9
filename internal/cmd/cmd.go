// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/polylog"
)

const (
	providersCmdShort = "list the registered providers"
	providersCmdLong  = `List the registered providers.
	The provider marked with '*' is the active one. The 'null' provider is
	always registered and is active when no other provider is selected.`
	providersCmdExample = `# List the providers declared in a file
	polylog providers --config providers.yaml`

	resolveCmdShort = "show how the active provider serves logger names"
	resolveCmdLong  = `Show how the active provider serves logger names.
	For every name print 'dedicated' when the provider holds a logger for
	that name, 'default' when the name falls back to the default logger,
	'unknown' when the provider cannot tell.`
	resolveCmdExample = `# Check which names have their own logger
	polylog resolve billing.Invoice billing.Payment --config providers.yaml`

	emitCmdShort = "emit a message through the logger of a name"
	emitCmdLong  = `Emit a message through the logger the active provider binds
	to a name. Useful to check where the lines of a component end up.`
	emitCmdExample = `# Emit a warning through the billing.Invoice logger
	polylog emit billing.Invoice "invoice sent" --level WARN --config providers.yaml`

	levelFlagName    = "level"
	levelFlagUsage   = "the level of the emitted message"
	levelFlagDefault = "INFO"
)

// ProvidersCmd returns the Cobra command that lists the registered providers.
func ProvidersCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     "providers",
		Short:   heredoc.Doc(providersCmdShort),
		Long:    heredoc.Doc(providersCmdLong),
		Example: heredoc.Doc(providersCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.load(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			active := opts.registry.ActiveName()
			for _, name := range opts.registry.Providers() {
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// ResolveCmd returns the Cobra command that reports how names are served.
func ResolveCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     "resolve NAME...",
		Short:   heredoc.Doc(resolveCmdShort),
		Long:    heredoc.Doc(resolveCmdLong),
		Example: heredoc.Doc(resolveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return handleError(cmd, errNoArguments)
			}

			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.load(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			provider := opts.registry.ActiveProvider()
			for _, arg := range args {
				name := polylog.ResolveName(arg)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, binding(provider, name))
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// EmitCmd returns the Cobra command that emits a message through a named logger.
func EmitCmd() *cobra.Command {
	flags := &flags{}
	level := levelFlagDefault
	cmd := &cobra.Command{
		Use:     "emit NAME MESSAGE",
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return handleError(cmd, fmt.Errorf("%w, got %d", errWrongArguments, len(args)))
			}

			parsedLevel, err := parseLevel(level)
			if err != nil {
				return handleError(cmd, err)
			}

			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.load(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			polylog.Emit(opts.registry.For(args[0]), parsedLevel, args[1])
			return nil
		},
	}

	flags.addFlags(cmd)
	cmd.Flags().StringVar(&level, levelFlagName, levelFlagDefault, levelFlagUsage)
	return cmd
}

// binding describes how provider serves name.
func binding(provider polylog.Provider, name string) string {
	switch p := provider.(type) {
	case *polylog.MultiProvider:
		if p.Has(name) {
			return "dedicated"
		}
		return "default"
	case *polylog.FactoryProvider:
		if name == "" {
			return "default"
		}
		return "dedicated"
	case *polylog.SoloProvider:
		return "default"
	default:
		return "unknown"
	}
}
