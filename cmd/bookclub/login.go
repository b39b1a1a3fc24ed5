// Login command for the bookclub CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/pkg/types"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Verify a member's credentials and print a session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "login", err)
		}

		password, err := promptPassword(loginPassword, "Password")
		if err != nil {
			fail(exitSysError, "login", err)
		}

		user, sess, err := app.Login(args[0], password)
		if err != nil {
			if errors.Is(err, types.ErrInvalidCredentials) {
				fail(exitUserError, "login", err)
			}
			fail(exitSysError, "login", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"user_id":   user.ID,
				"name":      user.Name,
				"token":     sess.Token,
				"issued_at": sess.IssuedAt,
			})
		}
		fmt.Printf("Welcome back, %s (user %d)\n", user.Name, user.ID)
		fmt.Println("session:", sess.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (omit to be prompted)")
}
