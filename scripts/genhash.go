package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Dev helper for seeding users: prints a bcrypt hash for each password
// passed on the command line, at the same cost the API uses.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
