package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	sealbox "github.com/sealbox/sealbox-go"
	"github.com/sealbox/sealbox-go/internal/crypto"
)

var (
	helperKeyPair     *sealbox.KeyPair
	helperKeyPairOnce sync.Once
)

// runHelper invokes run in process with the given stdin and returns
// what it wrote to stdout.
func runHelper(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	cfg := &Config{
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}
	err := run(append([]string{"testhelper"}, args...), cfg)
	return stdout.String(), err
}

// writeKeyFiles writes a shared key pair into a fresh temp dir and
// returns the two file paths.
func writeKeyFiles(t *testing.T) (string, string) {
	t.Helper()
	helperKeyPairOnce.Do(func() {
		kp, err := sealbox.GenerateKeyPair()
		if err != nil {
			return
		}
		helperKeyPair = kp
	})
	if helperKeyPair == nil {
		t.Fatal("key pair generation failed")
	}

	dir := t.TempDir()
	publicPath := filepath.Join(dir, "public.pem")
	privatePath := filepath.Join(dir, "private.pem")
	if err := os.WriteFile(publicPath, []byte(helperKeyPair.Public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(privatePath, []byte(helperKeyPair.Private), 0o600); err != nil {
		t.Fatal(err)
	}
	return publicPath, privatePath
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stdin != os.Stdin {
		t.Error("DefaultConfig().Stdin should be os.Stdin")
	}
	if cfg.Stdout != os.Stdout {
		t.Error("DefaultConfig().Stdout should be os.Stdout")
	}
	if cfg.Stderr != os.Stderr {
		t.Error("DefaultConfig().Stderr should be os.Stderr")
	}
}

func TestRun_Usage(t *testing.T) {
	if _, err := runHelper(t, ""); err == nil || !strings.Contains(err.Error(), "usage") {
		t.Errorf("expected a usage error, got %v", err)
	}

	if _, err := runHelper(t, "", "frobnicate"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected an unknown command error, got %v", err)
	}
}

func TestRun_BadArgCounts(t *testing.T) {
	tests := [][]string{
		{"generate-keypair"},
		{"generate-keypair", "only-one.pem"},
		{"seal"},
		{"open"},
		{"sign"},
		{"verify"},
		{"matches", "only-one.pem"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := runHelper(t, "", args...); err == nil {
				t.Error("expected a usage error")
			}
		})
	}
}

func TestGenerateKeypairCommand(t *testing.T) {
	dir := t.TempDir()
	publicPath := filepath.Join(dir, "public.pem")
	privatePath := filepath.Join(dir, "private.pem")

	out, err := runHelper(t, "", "generate-keypair", publicPath, privatePath)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var result struct {
		Fingerprint string `json:"fingerprint"`
		Algs        string `json:"algs"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if !strings.HasPrefix(result.Fingerprint, "SHA256:") {
		t.Errorf("fingerprint = %q, want SHA256: prefix", result.Fingerprint)
	}
	if result.Algs != crypto.AlgsCiphersuite {
		t.Errorf("algs = %q, want %q", result.Algs, crypto.AlgsCiphersuite)
	}

	publicKey, err := os.ReadFile(publicPath)
	if err != nil {
		t.Fatal(err)
	}
	privateKey, err := os.ReadFile(privatePath)
	if err != nil {
		t.Fatal(err)
	}
	if !sealbox.Matches(string(publicKey), string(privateKey)) {
		t.Error("written key files do not match")
	}
}

func TestSealOpenCommands(t *testing.T) {
	publicPath, privatePath := writeKeyFiles(t)
	message := []byte("round trip through the helper")
	stdin := base64.StdEncoding.EncodeToString(message)

	out, err := runHelper(t, stdin, "seal", publicPath)
	if err != nil {
		t.Fatalf("seal error = %v", err)
	}

	var sealed struct {
		Envelope string `json:"envelope"`
	}
	if err := json.Unmarshal([]byte(out), &sealed); err != nil {
		t.Fatalf("seal output is not JSON: %v", err)
	}

	envelope, err := base64.StdEncoding.DecodeString(sealed.Envelope)
	if err != nil {
		t.Fatalf("envelope is not base64: %v", err)
	}
	if !sealbox.IsSealed(envelope) {
		t.Error("helper output is not a sealed envelope")
	}

	out, err = runHelper(t, sealed.Envelope, "open", privatePath)
	if err != nil {
		t.Fatalf("open error = %v", err)
	}

	var opened struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &opened); err != nil {
		t.Fatalf("open output is not JSON: %v", err)
	}

	got, err := base64.StdEncoding.DecodeString(opened.Message)
	if err != nil {
		t.Fatalf("message is not base64: %v", err)
	}
	if !bytes.Equal(got, message) {
		t.Errorf("opened message = %q, want %q", got, message)
	}
}

func TestSignVerifyCommands(t *testing.T) {
	publicPath, privatePath := writeKeyFiles(t)
	message := []byte("helper signed this")
	stdin := base64.StdEncoding.EncodeToString(message)

	out, err := runHelper(t, stdin, "sign", privatePath)
	if err != nil {
		t.Fatalf("sign error = %v", err)
	}

	var signed struct {
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal([]byte(out), &signed); err != nil {
		t.Fatalf("sign output is not JSON: %v", err)
	}

	verifyInput := func(msg []byte) string {
		data, err := json.Marshal(map[string]string{
			"message":   base64.StdEncoding.EncodeToString(msg),
			"signature": signed.Signature,
		})
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	out, err = runHelper(t, verifyInput(message), "verify", publicPath)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	var verdict struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal([]byte(out), &verdict); err != nil {
		t.Fatalf("verify output is not JSON: %v", err)
	}
	if !verdict.Valid {
		t.Error("valid signature reported as invalid")
	}

	out, err = runHelper(t, verifyInput([]byte("altered")), "verify", publicPath)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if err := json.Unmarshal([]byte(out), &verdict); err != nil {
		t.Fatalf("verify output is not JSON: %v", err)
	}
	if verdict.Valid {
		t.Error("altered message reported as valid")
	}
}

func TestMatchesCommand(t *testing.T) {
	publicPath, privatePath := writeKeyFiles(t)

	out, err := runHelper(t, "", "matches", publicPath, privatePath)
	if err != nil {
		t.Fatalf("matches error = %v", err)
	}
	var result struct {
		Matches bool `json:"matches"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("matches output is not JSON: %v", err)
	}
	if !result.Matches {
		t.Error("matching pair reported as mismatched")
	}

	other, err := sealbox.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	otherPath := filepath.Join(t.TempDir(), "other.pem")
	if err := os.WriteFile(otherPath, []byte(other.Private), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err = runHelper(t, "", "matches", publicPath, otherPath)
	if err != nil {
		t.Fatalf("matches error = %v", err)
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("matches output is not JSON: %v", err)
	}
	if result.Matches {
		t.Error("cross pair reported as matching")
	}
}

func TestCommands_MissingKeyFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pem")

	tests := [][]string{
		{"seal", missing},
		{"open", missing},
		{"sign", missing},
		{"verify", missing},
		{"matches", missing, missing},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			if _, err := runHelper(t, "", args...); err == nil {
				t.Error("expected an error for a missing key file")
			}
		})
	}
}

func TestOpenCommand_Failures(t *testing.T) {
	_, privatePath := writeKeyFiles(t)

	t.Run("stdin is not base64", func(t *testing.T) {
		if _, err := runHelper(t, "not base64 at all!", "open", privatePath); err == nil {
			t.Error("expected a decode error")
		}
	})

	t.Run("envelope is garbage", func(t *testing.T) {
		garbage := base64.StdEncoding.EncodeToString([]byte("never sealed"))
		if _, err := runHelper(t, garbage, "open", privatePath); err == nil {
			t.Error("expected an open error")
		}
	})

	t.Run("sealed for another key", func(t *testing.T) {
		other, err := sealbox.GenerateKeyPair()
		if err != nil {
			t.Fatal(err)
		}
		sealed, err := sealbox.Seal([]byte("not for you"), other.Public)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := runHelper(t, base64.StdEncoding.EncodeToString(sealed), "open", privatePath); err == nil {
			t.Error("expected an open error")
		}
	})
}

func TestVerifyCommand_BadInput(t *testing.T) {
	publicPath, _ := writeKeyFiles(t)

	if _, err := runHelper(t, "not json", "verify", publicPath); err == nil {
		t.Error("expected a parse error")
	}

	badField := `{"message": "AAAA", "signature": "not base64!"}`
	if _, err := runHelper(t, badField, "verify", publicPath); err == nil {
		t.Error("expected a decode error")
	}
}
