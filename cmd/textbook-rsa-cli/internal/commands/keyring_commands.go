package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ListKeysCmd prints the stored key pairs, oldest first
func (commandHandler *RSACommandHandler) ListKeysCmd(cmd *cobra.Command, _ []string) error {
	minBits, err := cmd.Flags().GetInt("min-bits")
	if err != nil {
		return fmt.Errorf("invalid min-bits flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return fmt.Errorf("invalid offset flag: %w", err)
	}

	repo, closeRepo, err := openKeyRepository(commandHandler.database, commandHandler.logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	keyPairs, err := repo.List(cmd.Context(), &keys.KeyPairQuery{
		MinModulusBits: minBits,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return fmt.Errorf("failed to list key pairs: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, keyPair := range keyPairs {
		fmt.Fprintf(out, "%s %d-bit e=%s\n", keyPair.ID(), keyPair.N().BitLen(), keyPair.E())
	}
	return nil
}

// DeleteKeyCmd removes a key pair from the keyring
func (commandHandler *RSACommandHandler) DeleteKeyCmd(cmd *cobra.Command, _ []string) error {
	id, err := getKeyIDFlag(cmd)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return fmt.Errorf("--key-id is required")
	}

	repo, closeRepo, err := openKeyRepository(commandHandler.database, commandHandler.logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err := repo.DeleteByID(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", id)
	return nil
}

// InitKeyringCommands registers the keyring management commands
func InitKeyringCommands(rootCmd *cobra.Command, handler *RSACommandHandler) error {
	if handler == nil {
		return fmt.Errorf("RSA command handler cannot be nil")
	}

	var listKeysCmd = &cobra.Command{
		Use:   "list-keys",
		Short: "List key pairs stored in the keyring",
		Args:  cobra.NoArgs,
		RunE:  handler.ListKeysCmd,
	}
	listKeysCmd.Flags().IntP("min-bits", "", 0, "Only list key pairs with at least this modulus size")
	listKeysCmd.Flags().IntP("limit", "", 0, "Maximum number of key pairs to list (0 lists all)")
	listKeysCmd.Flags().IntP("offset", "", 0, "Number of key pairs to skip")
	rootCmd.AddCommand(listKeysCmd)

	var deleteKeyCmd = &cobra.Command{
		Use:   "delete-key",
		Short: "Delete a key pair from the keyring",
		Args:  cobra.NoArgs,
		RunE:  handler.DeleteKeyCmd,
	}
	deleteKeyCmd.Flags().StringP("key-id", "", "", "Keyring key pair ID")
	rootCmd.AddCommand(deleteKeyCmd)

	return nil
}
