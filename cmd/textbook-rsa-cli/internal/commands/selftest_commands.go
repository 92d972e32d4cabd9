package commands

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/octet"

	"github.com/spf13/cobra"
)

// selfTestMessages are round-tripped by the self-test with the configured key
var selfTestMessages = []string{
	"00", "01", "2A", "01FA", "5ABCD8", "BBBBBBBB", "10000DDD00",
	"080000000000000000000000000CCC",
	"0AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	"1234567890ABCD1234567890ABCD123456",
}

// selfTestOverlongMessage must be rejected by a 33 byte modulus
const selfTestOverlongMessage = "999999999999999999999999999999999999999999999999999999"

// SelfTestCmd derives the configured key and round-trips a fixed and a random battery of messages
func (commandHandler *RSACommandHandler) SelfTestCmd(cmd *cobra.Command, _ []string) error {
	randomCases, err := cmd.Flags().GetInt("random-cases")
	if err != nil {
		return fmt.Errorf("invalid random-cases flag: %w", err)
	}
	randomBytes, err := cmd.Flags().GetInt("random-bytes")
	if err != nil {
		return fmt.Errorf("invalid random-bytes flag: %w", err)
	}
	if randomCases < 0 || randomBytes < 0 {
		return fmt.Errorf("random-cases and random-bytes must not be negative")
	}

	p, err := octet.ParseDecimal(commandHandler.settings.PrimeP)
	if err != nil {
		return fmt.Errorf("invalid configured prime p: %w", err)
	}
	q, err := octet.ParseDecimal(commandHandler.settings.PrimeQ)
	if err != nil {
		return fmt.Errorf("invalid configured prime q: %w", err)
	}

	processor, err := newProcessor(commandHandler.logger, big.NewInt(int64(commandHandler.settings.PublicExponent)))
	if err != nil {
		return err
	}

	keyPair, err := processor.GenerateKey(p, q)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public  Key : (e, n) = (%s, %s)\n", keyPair.E(), keyPair.N())
	fmt.Fprintf(out, "Private Key : (d, n) = (%s, %s)\n\n", keyPair.D(), keyPair.N())

	messages := append([]string(nil), selfTestMessages...)
	for i := 0; i < randomCases; i++ {
		buf := make([]byte, randomBytes)
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return fmt.Errorf("failed to generate random message: %w", err)
		}
		messages = append(messages, octet.Encode(buf))
	}

	total, failures := len(messages), 0
	for _, message := range messages {
		if !runRoundTrip(out, processor, keyPair, message) {
			failures++
		}
	}

	if keyPair.PublicKey().Size()-crypto.PaddingOverhead < len(selfTestOverlongMessage)/2 {
		total++
		fmt.Fprintf(out, "Original : %s\n", selfTestOverlongMessage)
		_, err = processor.Encrypt(keyPair.PublicKey(), selfTestOverlongMessage)
		switch {
		case errors.Is(err, crypto.ErrMessageTooLong):
			fmt.Fprintf(out, "Rejected : %v\n\n", err)
		default:
			fmt.Fprintf(out, "Expected message too long, got: %v\n\n", err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("self-test failed: %d of %d cases", failures, total)
	}

	commandHandler.logger.Info("Self-test passed")
	return nil
}

func runRoundTrip(out io.Writer, processor cryptoalg.RSAProcessor, keyPair *crypto.KeyPair, message string) bool {
	fmt.Fprintf(out, "Original : %s\n", message)

	ciphertext, err := processor.Encrypt(keyPair.PublicKey(), message)
	if err != nil {
		fmt.Fprintf(out, "Encryption failed: %v\n\n", err)
		return false
	}
	fmt.Fprintf(out, "Cipher : %s\n", ciphertext)

	translated, err := processor.Decrypt(keyPair.PrivateKey(), ciphertext)
	if err != nil {
		fmt.Fprintf(out, "Decryption failed: %v\n\n", err)
		return false
	}
	fmt.Fprintf(out, "Translated : %s\n", translated)

	if translated != message {
		fmt.Fprintf(out, "Translate failure\n\n")
		return false
	}
	fmt.Fprintf(out, "Translate success\n\n")
	return true
}

// InitSelfTestCommands registers the self-test command
func InitSelfTestCommands(rootCmd *cobra.Command, handler *RSACommandHandler) error {
	if handler == nil {
		return fmt.Errorf("RSA command handler cannot be nil")
	}

	var selfTestCmd = &cobra.Command{
		Use:   "self-test",
		Short: "Round-trip a battery of messages with the configured key",
		Args:  cobra.NoArgs,
		RunE:  handler.SelfTestCmd,
	}
	selfTestCmd.Flags().IntP("random-cases", "", 10, "Number of random messages to round-trip")
	selfTestCmd.Flags().IntP("random-bytes", "", 4, "Length in bytes of each random message")
	rootCmd.AddCommand(selfTestCmd)

	return nil
}
