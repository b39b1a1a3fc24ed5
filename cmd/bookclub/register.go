// Register command for the bookclub CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/pkg/types"
)

var registerPassword string

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Create a new club member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "register", err)
		}

		password, err := promptPassword(registerPassword, "Choose a password")
		if err != nil {
			fail(exitSysError, "register", err)
		}

		user, err := app.Register(args[0], password)
		if err != nil {
			if errors.Is(err, types.ErrNameTaken) || errors.Is(err, types.ErrEmptyField) {
				fail(exitUserError, "register", err)
			}
			fail(exitSysError, "register", err)
		}

		if flagJSON {
			return printJSON(map[string]any{"user_id": user.ID, "name": user.Name})
		}
		fmt.Printf("Registered %s as user %d\n", user.Name, user.ID)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password (omit to be prompted)")
}
