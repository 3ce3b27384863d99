package main

import (
	"fmt"
	"log"
	"os"

	"masked-aadhaar.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// resolveArgs reads [password [aadhaar]] from the command line, with demo
// defaults for both.
func resolveArgs(args []string) (string, string) {
	password := "Demo.Pass-2026"
	aadhaar := "123456789012"
	if len(args) > 0 {
		password = args[0]
	}
	if len(args) > 1 {
		aadhaar = args[1]
	}
	return password, aadhaar
}

// generateHash produces the two at-rest digests used by the store: bcrypt
// for the password and unsalted sha256 for the identity number.
func generateHash(password, aadhaar string) (string, string, error) {
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return "", "", err
	}
	return hashedPassword, crypto.SHA256Hex(aadhaar), nil
}

func main() {
	password, aadhaar := resolveArgs(os.Args[1:])

	hashedPassword, hashedAadhaar, err := generateHashFn(password, aadhaar)
	if err != nil {
		fatalfFn("Failed to hash credentials: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hashedPassword)
	printfFn("Aadhaar SHA256: %s\n", hashedAadhaar)
}
