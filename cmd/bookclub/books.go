// Books commands for the bookclub CLI: list, show.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/internal/auth"
	"github.com/readersbay/bookclub/internal/catalog"
	"github.com/readersbay/bookclub/internal/review"
	"github.com/readersbay/bookclub/internal/share"
	"github.com/readersbay/bookclub/pkg/types"
)

var (
	booksListTitle  string
	booksListAuthor string
	booksListGenre  string
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Browse the book catalog",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries, optionally filtered",
	Long: `List prints the catalog, optionally filtered by one field.

The filter is a case-insensitive substring match. Only one of --title,
--author, --genre may be given.

Example:
  bookclub books list
  bookclub books list --author herbert
  bookclub books list --genre sci-fi`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, term, err := bookFilter()
		if err != nil {
			fail(exitUserError, "books list", err)
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "books list", err)
		}

		books := catalog.Filter(app.Books, field, term)
		if flagJSON {
			return printJSON(books)
		}
		if len(books) == 0 {
			fmt.Println("No books found.")
			return nil
		}
		for _, b := range books {
			fmt.Printf("  [%d] %s - %s (%s, %d)\n", b.ID, b.Title, b.Author, b.Genre, b.Year)
		}
		return nil
	},
}

var booksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one book with its reviews and recommendations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := catalog.ParseID(args[0])
		if err != nil {
			fail(exitUserError, "books show", err)
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "books show", err)
		}

		book, err := app.FindBook(id)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fail(exitUserError, "books show", err)
			}
			fail(exitSysError, "books show", err)
		}

		reviews := review.ForBook(app.Reviews, book.ID)
		shares := share.ForBook(app.Shares, book.ID)
		average := review.AverageRating(reviews)

		if flagJSON {
			return printJSON(map[string]any{
				"book":           book,
				"average_rating": average,
				"reviews":        reviews,
				"shares":         shares,
			})
		}

		fmt.Printf("[%d] %s\n", book.ID, book.Title)
		fmt.Printf("  author: %s\n", book.Author)
		fmt.Printf("  genre:  %s\n", book.Genre)
		fmt.Printf("  year:   %d\n", book.Year)
		fmt.Printf("  rating: %.1f (%d reviews)\n", average, len(reviews))

		if len(reviews) > 0 {
			fmt.Println("  reviews:")
			for _, r := range reviews {
				fmt.Printf("    %s (%s) %d/5: %s\n", userName(app.Users, r.UserID), r.Date, r.Rating, r.Text)
			}
		}
		if len(shares) > 0 {
			fmt.Println("  recommendations:")
			for _, sh := range shares {
				fmt.Printf("    %s -> %s (%s)\n", userName(app.Users, sh.FromUserID), userName(app.Users, sh.ToUserID), sh.Date)
				if sh.Note != "" {
					fmt.Printf("      note: %s\n", sh.Note)
				}
			}
		}
		return nil
	},
}

// bookFilter maps the list flags onto a (field, term) pair, rejecting
// combinations.
func bookFilter() (field, term string, err error) {
	set := 0
	if booksListTitle != "" {
		field, term = catalog.FieldTitle, booksListTitle
		set++
	}
	if booksListAuthor != "" {
		field, term = catalog.FieldAuthor, booksListAuthor
		set++
	}
	if booksListGenre != "" {
		field, term = catalog.FieldGenre, booksListGenre
		set++
	}
	if set > 1 {
		return "", "", fmt.Errorf("only one of --title, --author, --genre may be given")
	}
	if set == 0 {
		return catalog.FieldTitle, "", nil
	}
	return field, term, nil
}

// userName resolves a member name for display, tolerating dangling ids.
func userName(users []types.User, id int) string {
	u, err := auth.FindUserByID(users, id)
	if err != nil {
		return fmt.Sprintf("user %d", id)
	}
	return u.Name
}

func init() {
	booksListCmd.Flags().StringVar(&booksListTitle, "title", "", "filter by title substring")
	booksListCmd.Flags().StringVar(&booksListAuthor, "author", "", "filter by author substring")
	booksListCmd.Flags().StringVar(&booksListGenre, "genre", "", "filter by genre substring")

	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksShowCmd)
	booksCmd.AddCommand(booksImportCmd)
}
