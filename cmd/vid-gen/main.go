package main

import (
	"fmt"
	"log"
	"os"

	"masked-aadhaar.backend/pkg/vid"
)

var (
	printfFn   = fmt.Printf
	fatalfFn   = log.Fatalf
	generateFn = vid.Generate
)

func resolveIdentity(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "123456789012"
}

func main() {
	identity := resolveIdentity(os.Args[1:])

	if len(identity) != 12 {
		fatalfFn("identity must be a 12-digit number, got %q", identity)
	}

	generated := generateFn(identity)
	if !vid.Valid(generated) {
		fatalfFn("generated value failed validation: %s", generated)
	}

	printfFn("VID: %s\n", generated)
}
