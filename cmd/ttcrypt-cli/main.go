// Package main is the entry point for the ttcrypt-cli application.
// It initializes the root command, registers the RSA and factorization
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/godzivan/ttcrypt/cmd/ttcrypt-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "ttcrypt-cli",
		Short: "RSA primitive engine CLI tool",
		Long: `ttcrypt-cli drives the ttcrypt public-key primitive engine.
Supports RSA key generation, RSAES-OAEP encryption/decryption, RSASSA-PSS
signing/verification (PKCS#1 v2.2) and Pollard's-rho integer factorization.

Settings are read from the file named by the TTCRYPT_CONFIG environment
variable when it is set; built-in defaults apply otherwise.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitFactorCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize factorization commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
