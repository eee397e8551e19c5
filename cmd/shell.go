package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notioncli/internal/config"
	"github.com/yourorg/notioncli/internal/shell"
)

func newShellCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			historyDir, err := config.Dir()
			if err != nil {
				historyDir = ""
			}

			// Each line gets a fresh command tree so flag values from one
			// dispatch cannot leak into the next.
			runner := func(args []string) error {
				root, _ := newRootCmd()
				root.SetIn(cmd.InOrStdin())
				root.SetOut(cmd.OutOrStdout())
				root.SetErr(cmd.ErrOrStderr())
				root.SetArgs(args)
				return root.Execute()
			}

			s := shell.New(runner, cmd.InOrStdin(), cmd.OutOrStdout(), historyDir)
			if err := s.Run(); err != nil {
				return fmt.Errorf("shell: %w", err)
			}
			return nil
		},
	}
}
