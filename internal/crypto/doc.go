// Package crypto provides cryptographic primitives for the sealbox
// message format. It implements RSA key management, session key
// wrapping, block encryption, and detached signatures.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - RSA-2048 with public exponent 65537: asymmetric keypairs used for
//     session key wrapping and message signatures. Public keys are PEM
//     encoded as PKIX "PUBLIC KEY" blocks, private keys as PKCS#1
//     "RSA PRIVATE KEY" blocks.
//
//   - RSA-OAEP (SHA-1/MGF1-SHA-1): wrapping of the per-message session
//     key. The wrapped blob is exactly the modulus size of the
//     recipient key.
//
//   - AES-256-CBC with PKCS#7 padding: encryption of the message
//     payload under a fresh session key and IV.
//
//   - RSA PKCS#1 v1.5 over SHA-256: detached message signatures, fixed
//     at the modulus size of the signing key.
//
// # Security Model
//
// The scheme provides:
//
//   - Confidentiality: only the holder of the private key can unwrap
//     the session key and decrypt the payload.
//   - Recipient recognition: a short tag prefixed to the payload before
//     encryption lets the recipient detect decryption with the wrong
//     key without leaking which decryption stage failed.
//   - Signer authenticity: detached signatures prove a message was
//     produced by the holder of a private key.
//
// # Critical Security Notes
//
// CBC ciphertexts are NOT authenticated. The recognition tag detects
// accidental wrong-key decryption; it is not a cryptographic integrity
// check. Senders who need integrity and origin authentication must
// sign the message with [SignMessage] and recipients must check the
// signature with [VerifySignature].
//
// Padding and recognition failures after decryption must be presented
// to callers identically. Distinguishing them creates a padding oracle
// against the CBC layer.
//
// OAEP uses SHA-1 only because the wire format of existing envelopes
// fixes it. OAEP does not rely on collision resistance, so SHA-1 is
// not a weakness in this position.
//
// # Key Management
//
// Use [GenerateKeypair] to create a new RSA-2048 keypair with both PEM
// encodings. Session keys exist only for the duration of a single
// wrap or unwrap and are zeroed with [Wipe] on every exit path.
//
// Keep private keys secure. They should never be logged, transmitted
// in plaintext, or stored in version control.
package crypto
