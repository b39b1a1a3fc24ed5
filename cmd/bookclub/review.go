// Review commands for the bookclub CLI: add, list.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/internal/auth"
	"github.com/readersbay/bookclub/internal/catalog"
	"github.com/readersbay/bookclub/internal/review"
	"github.com/readersbay/bookclub/pkg/types"
)

var (
	reviewAddUser   int
	reviewAddRating int
	reviewAddText   string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Read and write book reviews",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add <book-id>",
	Short: "Add or edit your review of a book",
	Long: `Add records your review of a book. Each member holds at most one
review per book: submitting again overwrites the earlier rating, text,
and date.

Example:
  bookclub review add 3 --user 1 --rating 5 --text "loved it"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := catalog.ParseID(args[0])
		if err != nil {
			fail(exitUserError, "review add", err)
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "review add", err)
		}

		// The book and the reviewer must both exist.
		if _, err := app.FindBook(bookID); err != nil {
			fail(exitUserError, "review add", err)
		}
		if _, err := auth.FindUserByID(app.Users, reviewAddUser); err != nil {
			fail(exitUserError, "review add", err)
		}

		rec, err := app.SubmitReview(bookID, reviewAddUser, reviewAddRating, reviewAddText)
		if err != nil {
			if errors.Is(err, types.ErrInvalidRating) {
				fail(exitUserError, "review add", err)
			}
			fail(exitSysError, "review add", err)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Printf("Saved review %d: book %d rated %d/5\n", rec.ID, rec.BookID, rec.Rating)
		return nil
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list <book-id>",
	Short: "List the reviews of a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := catalog.ParseID(args[0])
		if err != nil {
			fail(exitUserError, "review list", err)
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "review list", err)
		}

		reviews := review.ForBook(app.Reviews, bookID)
		if flagJSON {
			return printJSON(reviews)
		}
		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}
		fmt.Printf("average %.1f over %d reviews\n", review.AverageRating(reviews), len(reviews))
		for _, r := range reviews {
			fmt.Printf("  %s (%s) %d/5: %s\n", userName(app.Users, r.UserID), r.Date, r.Rating, r.Text)
		}
		return nil
	},
}

func init() {
	reviewAddCmd.Flags().IntVar(&reviewAddUser, "user", 0, "reviewing member id (required)")
	reviewAddCmd.Flags().IntVar(&reviewAddRating, "rating", 0, "rating from 1 to 5 (required)")
	reviewAddCmd.Flags().StringVar(&reviewAddText, "text", "", "review text")
	reviewAddCmd.MarkFlagRequired("user")
	reviewAddCmd.MarkFlagRequired("rating")

	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
}
