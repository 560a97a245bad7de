// Command hashpw prints an ADMIN_PASSWORD_SALT and ADMIN_PASSWORD_HASH pair
// for the given password.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TedMN/mplsjrdevs/internal/adapters/auth"
)

func main() {
	cost := flag.Int("cost", auth.DefaultCost, "bcrypt cost")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hashpw [-cost n] <password>")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	salt, err := hasher.GenerateSalt()
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate salt:", err)
		os.Exit(1)
	}
	hash, err := hasher.Hash(salt, flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}
	fmt.Printf("ADMIN_PASSWORD_SALT=%s\nADMIN_PASSWORD_HASH=%s\n", salt, hash)
}
