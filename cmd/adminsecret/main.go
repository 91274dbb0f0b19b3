// Command adminsecret prints the bcrypt hash to put in ADMIN_SECRET_HASH, or
// checks a secret against an existing hash.
package main

import (
	"flag"
	"fmt"
	"os"

	"renovo/internal/auth"
)

func main() {
	check := flag.String("check", "", "existing hash to verify the secret against")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: adminsecret [-check HASH] SECRET")
		os.Exit(2)
	}
	secret := flag.Arg(0)

	if *check != "" {
		if err := auth.VerifySecret(*check, secret); err != nil {
			fmt.Println("FAIL:", err)
			os.Exit(1)
		}
		fmt.Println("SUCCESS")
		return
	}

	hash, err := auth.HashSecret(secret)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash secret:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
