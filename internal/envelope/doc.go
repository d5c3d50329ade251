// Package envelope implements the sealed message wire format.
//
// An envelope is a single byte blob with four sections in fixed order:
//
//	offset      size          content
//	0           8             marker "MESSAGE:"
//	8           K             session key wrapped with RSA-OAEP
//	8+K         16            CBC initialization vector, in clear
//	24+K        16*n, n >= 1  AES-256-CBC ciphertext of tag || payload
//
// K is the modulus size of the recipient key (256 bytes for RSA-2048)
// and is never stored; both sides derive it from their key. The
// three-byte recognition tag "MSG" is prefixed to the payload before
// encryption so the recipient can detect decryption with the wrong
// key.
//
// Parsing is strictly sequential. Each section is consumed from a
// cursor over the immutable input and every failure short-circuits, so
// no section is interpreted unless everything before it was accepted.
package envelope
