package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/config"
	"github.com/yourorg/notioncli/internal/render"
	"github.com/yourorg/notioncli/internal/simplify"
)

type globalOptions struct {
	profile string
	output  string
	noColor bool
	debug   bool
}

// newRootCmd builds a command tree with its own flag state. Every invocation
// gets a fresh tree; the interactive shell constructs one per dispatched line
// so flags set on one line never carry over to the next.
func newRootCmd() (*cobra.Command, *globalOptions) {
	globals := &globalOptions{
		profile: config.DefaultProfile,
	}

	rootCmd := &cobra.Command{
		Use:           "notioncli",
		Short:         "CLI for working with Notion pages, databases, blocks and users",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globals.profile, "profile", globals.profile, "Auth profile to use")
	rootCmd.PersistentFlags().StringVarP(&globals.output, "output", "o", "", "Output format: json|yaml|table|text")
	rootCmd.PersistentFlags().BoolVar(&globals.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "Show full error context")

	rootCmd.SetErr(os.Stderr)
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(newAuthCmd(globals))
	rootCmd.AddCommand(newSearchCmd(globals))
	rootCmd.AddCommand(newPagesCmd(globals))
	rootCmd.AddCommand(newDBCmd(globals))
	rootCmd.AddCommand(newBlocksCmd(globals))
	rootCmd.AddCommand(newUsersCmd(globals))
	rootCmd.AddCommand(newCommentsCmd(globals))
	rootCmd.AddCommand(newBulkCmd(globals))
	rootCmd.AddCommand(newConfigCmd(globals))
	rootCmd.AddCommand(newShellCmd(globals))

	return rootCmd, globals
}

// Execute runs the command hierarchy.
func Execute() error {
	rootCmd, globals := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if globals.debug {
			printErrorChain(os.Stderr, err)
		}
		return err
	}
	return nil
}

// renderOptions resolves the output mode and color flag for this invocation:
// the --output flag wins, then the profile's configured format.
func (g *globalOptions) renderOptions(cmd *cobra.Command) (render.Mode, render.Options, error) {
	name := g.output
	color := !g.noColor

	settings, err := config.LoadSettings(g.profile)
	if err == nil {
		if name == "" {
			name = settings.Output
		}
		color = color && settings.Color
	} else if name == "" {
		name = string(render.ModeTable)
	}

	mode, err := render.ParseMode(name)
	if err != nil {
		return "", render.Options{}, err
	}

	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		color = color && isatty.IsTerminal(f.Fd())
	}
	return mode, render.Options{Color: color}, nil
}

// printResult simplifies a record and renders it in the resolved mode.
func printResult(cmd *cobra.Command, g *globalOptions, v any) error {
	mode, opts, err := g.renderOptions(cmd)
	if err != nil {
		return err
	}
	if err := render.Render(cmd.OutOrStdout(), mode, simplify.Auto(v), opts); err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	return nil
}

func printErrorChain(w *os.File, err error) {
	depth := 0
	for err != nil {
		fmt.Fprintf(w, "debug[%d]: %v\n", depth, err)
		err = errors.Unwrap(err)
		depth++
	}
}
