// Package main provides httpenum, a command line front-end to the HTTP
// vocabulary catalogs: status codes, methods, URI schemes and content types.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
