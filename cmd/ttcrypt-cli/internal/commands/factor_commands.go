package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/godzivan/ttcrypt/internal/domain/factoring"
	"github.com/godzivan/ttcrypt/internal/infrastructure/cryptography"
	"github.com/godzivan/ttcrypt/internal/pkg/logger"
)

// FactorCommandHandler encapsulates logic for handling factorization via CLI.
type FactorCommandHandler struct {
	factorizer factoring.Factorizer
	logger     logger.Logger
}

// NewFactorCommandHandler initializes a new FactorCommandHandler with logging
// and a Pollard's-rho factorizer.
func NewFactorCommandHandler() (*FactorCommandHandler, error) {
	_, loggerInstance, err := setupApp()
	if err != nil {
		return nil, err
	}

	factorizer, err := cryptography.NewRhoFactorizer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create factorizer: %w", err)
	}

	return &FactorCommandHandler{
		factorizer: factorizer,
		logger:     loggerInstance,
	}, nil
}

// FactorizeCmd factorizes an integer given in decimal or 0x-prefixed hex form.
// Factorization of large semiprimes may run for a long time.
func (commandHandler *FactorCommandHandler) FactorizeCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		commandHandler.logger.Error("expected exactly one integer argument")
		return
	}

	composite, ok := new(big.Int).SetString(args[0], 0)
	if !ok {
		commandHandler.logger.Error("cannot parse integer: ", args[0])
		return
	}

	factors, err := commandHandler.factorizer.Factorize(composite)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	fmt.Printf("%s = %s\n", composite.String(), strings.Join(parts, " * "))
}

// InitFactorCommands registers factorization-related commands
func InitFactorCommands(rootCmd *cobra.Command) error {
	handler, err := NewFactorCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create factorization command handler %w", err)
	}

	var factorizeCmd = &cobra.Command{
		Use:   "factorize <integer>",
		Short: "Factorize an integer with Pollard's rho",
		Args:  cobra.ExactArgs(1),
		Run:   handler.FactorizeCmd,
	}
	rootCmd.AddCommand(factorizeCmd)
	return nil
}
