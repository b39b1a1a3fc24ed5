// Inbox command for the bookclub CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/internal/auth"
	"github.com/readersbay/bookclub/pkg/types"
)

var inboxUser int

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List the books recommended to a member",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "inbox", err)
		}

		if _, err := auth.FindUserByID(app.Users, inboxUser); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fail(exitUserError, "inbox", err)
			}
			fail(exitSysError, "inbox", err)
		}

		shares := app.Inbox(inboxUser)
		if flagJSON {
			return printJSON(shares)
		}
		if len(shares) == 0 {
			fmt.Println("Inbox is empty.")
			return nil
		}
		for _, sh := range shares {
			title := fmt.Sprintf("book %d", sh.BookID)
			if book, err := app.FindBook(sh.BookID); err == nil {
				title = book.Title
			}
			fmt.Printf("  %s recommends %q (%s)\n", userName(app.Users, sh.FromUserID), title, sh.Date)
			if sh.Note != "" {
				fmt.Printf("    note: %s\n", sh.Note)
			}
		}
		return nil
	},
}

func init() {
	inboxCmd.Flags().IntVar(&inboxUser, "user", 0, "member id whose inbox to read (required)")
	inboxCmd.MarkFlagRequired("user")
}
