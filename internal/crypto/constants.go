package crypto

const (
	// RSAKeyBits is the modulus size in bits of generated RSA keys.
	RSAKeyBits = 2048
	// MinRSAKeyBits is the smallest modulus accepted when parsing keys.
	MinRSAKeyBits = 2048

	// SessionKeySize is the size of an AES-256 session key in bytes.
	SessionKeySize = 32
	// IVSize is the size of a CBC initialization vector in bytes.
	IVSize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "RSA-2048-OAEP:AES-256-CBC:RSA-SHA256"
