package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Work with workspace users",
	}

	cmd.AddCommand(newUsersListCmd(globals))
	cmd.AddCommand(newUsersGetCmd(globals))
	cmd.AddCommand(newUsersMeCmd(globals))

	return cmd
}

func newUsersListCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workspace users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			users, err := client.ListAllUsers(cmd.Context(), 0)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			return printResult(cmd, globals, users)
		},
	}
}

func newUsersGetCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Retrieve a workspace user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			user, err := client.RetrieveUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieve user: %w", err)
			}
			return printResult(cmd, globals, user)
		},
	}
}

func newUsersMeCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the bot user the token belongs to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(globals.profile)
			if err != nil {
				return err
			}
			user, err := client.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("retrieve bot user: %w", err)
			}
			return printResult(cmd, globals, user)
		},
	}
}
