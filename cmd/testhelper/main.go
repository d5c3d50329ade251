package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	sealbox "github.com/sealbox/sealbox-go"
	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Config carries the streams a command reads and writes, so tests can
// run commands in process.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig wires the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// run dispatches a testhelper command. Keys are PEM files named on the
// command line; payloads travel base64 encoded on stdin and inside the
// JSON printed to stdout, so other implementations of the same
// envelope format can be driven against this one.
func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <command> [args]")
	}

	switch args[1] {
	case "generate-keypair":
		if len(args) != 4 {
			return fmt.Errorf("usage: testhelper generate-keypair <public.pem> <private.pem>")
		}
		return generateKeypair(cfg, args[2], args[3])
	case "seal":
		if len(args) != 3 {
			return fmt.Errorf("usage: testhelper seal <public.pem>")
		}
		return sealMessage(cfg, args[2])
	case "open":
		if len(args) != 3 {
			return fmt.Errorf("usage: testhelper open <private.pem>")
		}
		return openMessage(cfg, args[2])
	case "sign":
		if len(args) != 3 {
			return fmt.Errorf("usage: testhelper sign <private.pem>")
		}
		return signMessage(cfg, args[2])
	case "verify":
		if len(args) != 3 {
			return fmt.Errorf("usage: testhelper verify <public.pem>")
		}
		return verifySignature(cfg, args[2])
	case "matches":
		if len(args) != 4 {
			return fmt.Errorf("usage: testhelper matches <public.pem> <private.pem>")
		}
		return matchKeys(cfg, args[2], args[3])
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func generateKeypair(cfg *Config, publicPath, privatePath string) error {
	kp, err := sealbox.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}

	if err := os.WriteFile(publicPath, []byte(kp.Public), 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	if err := os.WriteFile(privatePath, []byte(kp.Private), 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	fp, err := sealbox.Fingerprint(kp.Public)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]string{
		"fingerprint": fp,
		"algs":        crypto.AlgsCiphersuite,
	})
}

func sealMessage(cfg *Config, publicPath string) error {
	publicKey, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("read public key: %w", err)
	}

	message, err := readBase64(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	sealed, err := sealbox.Seal(message, string(publicKey))
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]string{
		"envelope": base64.StdEncoding.EncodeToString(sealed),
	})
}

func openMessage(cfg *Config, privatePath string) error {
	privateKey, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}

	sealed, err := readBase64(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read envelope: %w", err)
	}

	message, err := sealbox.Open(sealed, string(privateKey))
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]string{
		"message": base64.StdEncoding.EncodeToString(message),
	})
}

func signMessage(cfg *Config, privatePath string) error {
	privateKey, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}

	message, err := readBase64(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	sig, err := sealbox.Sign(string(privateKey), message)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]string{
		"signature": base64.StdEncoding.EncodeToString(sig),
	})
}

func verifySignature(cfg *Config, publicPath string) error {
	publicKey, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("read public key: %w", err)
	}

	var input struct {
		Message   string `json:"message"`
		Signature string `json:"signature"`
	}
	if err := json.NewDecoder(cfg.Stdin).Decode(&input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	message, err := base64.StdEncoding.DecodeString(input.Message)
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(input.Signature)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	valid, err := sealbox.Verify(string(publicKey), message, sig)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{"valid": valid})
}

func matchKeys(cfg *Config, publicPath, privatePath string) error {
	publicKey, err := os.ReadFile(publicPath)
	if err != nil {
		return fmt.Errorf("read public key: %w", err)
	}
	privateKey, err := os.ReadFile(privatePath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{
		"matches": sealbox.Matches(string(publicKey), string(privateKey)),
	})
}

// readBase64 reads all of r as base64 text. Empty input is a valid
// empty payload.
func readBase64(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
