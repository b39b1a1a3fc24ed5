// Version command for the bookclub CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readersbay/bookclub/pkg/bookclub"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bookclub version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bookclub", bookclub.Version)
	},
}
