// Package sealbox seals messages for a recipient's RSA public key and
// signs them with the sender's RSA private key.
//
// Sealing wraps a fresh AES-256 session key with RSA-OAEP and encrypts
// the message with AES-256-CBC; the result is a single self-contained
// envelope that only the matching private key can open. Signatures are
// detached RSA-SHA256. Keys travel as PEM strings and every operation
// is stateless and safe for concurrent use.
//
// Basic usage:
//
//	kp, err := sealbox.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Seal a message for the key pair's owner
//	sealed, err := sealbox.Seal([]byte("meet at noon"), kp.Public)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Only the private key opens it
//	msg, err := sealbox.Open(sealed, kp.Private)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(string(msg))
package sealbox
