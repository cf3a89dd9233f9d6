package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"feriascalendar/internal/adapters/auth"
)

// readSecret reads one line without echo. Replaced in tests.
var readSecret = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// HashSecret handles the hash-secret subcommand: it prompts for the admin password twice
// and prints a bcrypt hash for ADMIN_PASSWORD on stdout. It returns the process exit code.
func HashSecret(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash-secret", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", auth.DefaultBcryptCost, "bcrypt cost")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ferias hash-secret [OPTIONS]\n\n")
		fmt.Fprintf(stderr, "Prints a bcrypt hash of the moderation password, suitable for ADMIN_PASSWORD.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		fmt.Fprintf(stderr, "cost must be between %d and %d\n", bcrypt.MinCost, bcrypt.MaxCost)
		return 2
	}

	secret, err := readSecret("Enter password:   ")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if secret == "" {
		fmt.Fprintln(stderr, "Password cannot be empty")
		return 1
	}
	confirm, err := readSecret("Confirm password: ")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if secret != confirm {
		fmt.Fprintln(stderr, "Passwords do not match")
		return 1
	}

	hash, err := auth.HashSecret(secret, *cost)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, hash)
	return 0
}
