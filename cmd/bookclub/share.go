// Share command for the bookclub CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/internal/catalog"
	"github.com/readersbay/bookclub/pkg/types"
)

var (
	shareFrom int
	shareTo   int
	shareNote string
)

var shareCmd = &cobra.Command{
	Use:   "share <book-id>",
	Short: "Recommend a book to another member",
	Long: `Share records a recommendation of a book from one member to another.
The recipient sees it in their inbox. You cannot recommend a book to
yourself.

Example:
  bookclub share 3 --from 1 --to 2 --note "thought of you"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := catalog.ParseID(args[0])
		if err != nil {
			fail(exitUserError, "share", err)
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "share", err)
		}

		if _, err := app.FindBook(bookID); err != nil {
			fail(exitUserError, "share", err)
		}

		rec, err := app.Recommend(bookID, shareFrom, shareTo, shareNote)
		if err != nil {
			if errors.Is(err, types.ErrSelfShare) || errors.Is(err, types.ErrNotFound) {
				fail(exitUserError, "share", err)
			}
			fail(exitSysError, "share", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Recommended book %d to %s\n", rec.BookID, userName(app.Users, rec.ToUserID))
		return nil
	},
}

func init() {
	shareCmd.Flags().IntVar(&shareFrom, "from", 0, "sending member id (required)")
	shareCmd.Flags().IntVar(&shareTo, "to", 0, "receiving member id (required)")
	shareCmd.Flags().StringVar(&shareNote, "note", "", "note for the recipient")
	shareCmd.MarkFlagRequired("from")
	shareCmd.MarkFlagRequired("to")
}
