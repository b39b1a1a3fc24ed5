// Books import command: merges a curated catalog file into books.json.
// The services never mutate the catalog; this command is the curation
// door.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/pkg/types"
)

var booksImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON catalog file into the book catalog",
	Long: `Import reads a JSON array of books and merges it into the catalog.

An incoming book whose id matches an existing entry replaces it. A book
with id 0 gets the next free id. Everything else is appended as-is.

Example:
  bookclub books import catalog.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(exitUserError, "books import", err)
		}

		var incoming []types.Book
		if err := json.Unmarshal(data, &incoming); err != nil {
			fail(exitUserError, "books import", fmt.Errorf("parse %s: %w", args[0], err))
		}

		app, err := loadApp()
		if err != nil {
			fail(exitSysError, "books import", err)
		}

		books := app.Books
		added, replaced := 0, 0
		for _, b := range incoming {
			if b.ID == 0 {
				b.ID = nextBookID(books)
			}
			if i := bookIndex(books, b.ID); i >= 0 {
				books[i] = b
				replaced++
			} else {
				books = append(books, b)
				added++
			}
		}

		if err := app.Store().SaveBooks(books); err != nil {
			fail(exitSysError, "books import", err)
		}

		if flagJSON {
			return printJSON(map[string]int{"added": added, "replaced": replaced, "total": len(books)})
		}
		fmt.Printf("Imported %d books (%d new, %d replaced), catalog now holds %d\n",
			len(incoming), added, replaced, len(books))
		return nil
	},
}

func bookIndex(books []types.Book, id int) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func nextBookID(books []types.Book) int {
	maxID := 0
	for _, b := range books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}
