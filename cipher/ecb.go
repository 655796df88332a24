package cipher

import (
	"fmt"

	"github.com/busserull/crypto/aes"
	"github.com/busserull/crypto/padding"
)

// EncryptECB дополняет открытый текст PKCS7 и шифрует каждый блок независимо
func EncryptECB(plaintext []byte, key *aes.Key) []byte {
	padded := padding.Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))

	forEachBlock(len(padded)/aes.BlockSize, func(lo, hi int) {
		for i := lo * aes.BlockSize; i < hi*aes.BlockSize; i += aes.BlockSize {
			key.Encrypt(ciphertext[i:], padded[i:])
		}
	})

	return ciphertext
}

// DecryptECB расшифровывает каждый блок и снимает набивку PKCS7
func DecryptECB(ciphertext []byte, key *aes.Key) ([]byte, error) {
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d байт", ErrIrregularDecryptLength, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	forEachBlock(len(ciphertext)/aes.BlockSize, func(lo, hi int) {
		for i := lo * aes.BlockSize; i < hi*aes.BlockSize; i += aes.BlockSize {
			key.Decrypt(plaintext[i:], ciphertext[i:])
		}
	})

	return unpadBlocks(plaintext)
}

// unpadBlocks снимает набивку PKCS7, отвергая значения больше размера блока
func unpadBlocks(plaintext []byte) ([]byte, error) {
	if n := len(plaintext); n > 0 && int(plaintext[n-1]) > aes.BlockSize {
		return nil, ErrPadding
	}
	return padding.Unpad(plaintext)
}
