package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/config"
	"github.com/yourorg/notioncli/internal/display"
)

func newConfigCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change profile settings",
	}

	cmd.AddCommand(newConfigShowCmd(globals))
	cmd.AddCommand(newConfigSetCmd(globals))
	cmd.AddCommand(newConfigGetCmd(globals))
	cmd.AddCommand(newConfigUnsetCmd(globals))
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigEditCmd())

	return cmd
}

func newConfigShowCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active profile's settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(globals.profile)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			token, err := config.LoadToken(globals.profile)
			if err != nil && !errors.Is(err, config.ErrNoCredentials) {
				return err
			}

			out := display.NewMap().
				Set("profile", display.Text(globals.profile)).
				Set("api_key", display.Text(config.MaskToken(token))).
				Set("output", display.Text(settings.Output)).
				Set("color", display.Bool(settings.Color)).
				Set("page_size", display.Number(float64(settings.PageSize))).
				Set("notion_version", display.Text(settings.NotionVersion))
			return printResult(cmd, globals, out)
		},
	}
}

func newConfigSetCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a profile setting (output, color, page_size, notion_version)",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetSetting(globals.profile, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s for profile %q\n", args[0], args[1], globals.profile)
			return nil
		},
	}
}

func newConfigGetCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one profile setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetSetting(globals.profile, args[0])
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), value); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}

func newConfigUnsetCmd(globals *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a profile setting, restoring its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Remove setting %q for profile %q?", args[0], globals.profile))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			if err := config.UnsetSetting(globals.profile, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s for profile %q\n", args[0], globals.profile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}

func newConfigEditCmd() *cobra.Command {
	var editor string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in an editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			name := editor
			if name == "" {
				name = os.Getenv("EDITOR")
			}
			if name == "" {
				name = "vi"
			}

			edit := exec.CommandContext(cmd.Context(), name, path) // #nosec G204 -- user-chosen editor by design
			edit.Stdin = os.Stdin
			edit.Stdout = os.Stdout
			edit.Stderr = os.Stderr
			if err := edit.Run(); err != nil {
				return fmt.Errorf("run editor %q: %w", name, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&editor, "editor", "e", "", "Editor to use (default $EDITOR)")

	return cmd
}
