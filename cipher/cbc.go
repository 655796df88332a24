package cipher

import (
	"fmt"

	"github.com/busserull/crypto/aes"
	"github.com/busserull/crypto/padding"
)

func checkIV(iv []byte) error {
	if len(iv) != aes.BlockSize {
		return fmt.Errorf("%w: ожидается %d, получено %d", ErrWrongSizeIV, aes.BlockSize, len(iv))
	}
	return nil
}

// EncryptCBC дополняет открытый текст PKCS7 и шифрует его в режиме сцепления блоков
func EncryptCBC(plaintext []byte, key *aes.Key, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}

	ciphertext := padding.Pad(plaintext, aes.BlockSize)
	prevBlock := iv

	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		block := ciphertext[i : i+aes.BlockSize]
		xorBytes(block, block, prevBlock)
		key.Encrypt(block, block)
		prevBlock = block
	}

	return ciphertext, nil
}

// DecryptCBC расшифровывает шифртекст CBC и снимает набивку PKCS7
func DecryptCBC(ciphertext []byte, key *aes.Key, iv []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d байт", ErrIrregularDecryptLength, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	forEachBlock(len(ciphertext)/aes.BlockSize, func(lo, hi int) {
		for i := lo * aes.BlockSize; i < hi*aes.BlockSize; i += aes.BlockSize {
			prevBlock := iv
			if i > 0 {
				prevBlock = ciphertext[i-aes.BlockSize : i]
			}

			block := plaintext[i : i+aes.BlockSize]
			key.Decrypt(block, ciphertext[i:])
			xorBytes(block, block, prevBlock)
		}
	})

	return unpadBlocks(plaintext)
}

// xorBytes записывает a ^ b в dst для min(len(a), len(b)) байт
func xorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
