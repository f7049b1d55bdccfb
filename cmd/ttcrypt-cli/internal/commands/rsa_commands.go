package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
	"github.com/godzivan/ttcrypt/internal/infrastructure/cryptography"
	"github.com/godzivan/ttcrypt/internal/pkg/config"
	"github.com/godzivan/ttcrypt/internal/pkg/logger"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor rsaDomain.Processor
	settings     *config.AppSettings
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with settings,
// logging and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	settings, loggerInstance, err := setupApp()
	if err != nil {
		return nil, err
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		settings:     settings,
		logger:       loggerInstance,
	}, nil
}

func (commandHandler *RSACommandHandler) hashFlag(cmd *cobra.Command) string {
	hashName, err := cmd.Flags().GetString("hash")
	if err != nil || hashName == "" {
		return commandHandler.settings.DefaultHash
	}
	return hashName
}

// GenerateKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	bitStrength, err := cmd.Flags().GetInt("bit-strength")
	if err != nil {
		commandHandler.logger.Error("invalid bit-strength flag: ", err)
		return
	}
	if bitStrength == 0 {
		bitStrength = commandHandler.settings.KeyGen.BitStrength
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	key, err := commandHandler.rsaProcessor.GenerateKey(bitStrength)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := cryptography.SavePrivateKeyToFile(key, privateKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := cryptography.SavePublicKeyToFile(key.ExtractPublic(), publicKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Saved key pair under ", keyDir)
}

// EncryptCmd encrypts a file using RSAES-OAEP
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := cryptography.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := commandHandler.rsaProcessor.Encrypt(plainText, publicKey, commandHandler.hashFlag(cmd))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a file using RSAES-OAEP
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := cryptography.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := commandHandler.rsaProcessor.Decrypt(encryptedData, privateKey, commandHandler.hashFlag(cmd))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignCmd signs a file using RSASSA-PSS and saves the signature
func (commandHandler *RSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := cryptography.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := commandHandler.rsaProcessor.Sign(data, privateKey, commandHandler.hashFlag(cmd))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(signatureFilePath, signature, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyCmd verifies a signature using RSASSA-PSS
func (commandHandler *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := cryptography.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := commandHandler.rsaProcessor.Verify(data, signature, publicKey, commandHandler.hashFlag(cmd))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("bit-strength", "", 0, "RSA key bit strength (defaults to the configured strength)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using RSAES-OAEP",
		Run:   handler.EncryptCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	encryptFileCmd.Flags().StringP("hash", "", "", "Hash algorithm (sha1, sha256, ...)")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file using RSAES-OAEP",
		Run:   handler.DecryptCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	decryptFileCmd.Flags().StringP("hash", "", "", "Hash algorithm (sha1, sha256, ...)")
	rootCmd.AddCommand(decryptFileCmd)

	var signFileCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using RSASSA-PSS",
		Run:   handler.SignCmd,
	}
	signFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	signFileCmd.Flags().StringP("hash", "", "", "Hash algorithm (sha1, sha256, ...)")
	rootCmd.AddCommand(signFileCmd)

	var verifyFileCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature using RSASSA-PSS",
		Run:   handler.VerifyCmd,
	}
	verifyFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyFileCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	verifyFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	verifyFileCmd.Flags().StringP("hash", "", "", "Hash algorithm (sha1, sha256, ...)")
	rootCmd.AddCommand(verifyFileCmd)
	return nil
}
