// Package bookclub exposes build metadata shared by the CLI.
package bookclub

// Version is the bookclub release version.
const Version = "0.1.0"
