// Package cipher реализует режимы ECB, CBC и CTR поверх блочного шифра AES
// с набивкой PKCS7.
package cipher

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/busserull/crypto/aes"
)

type Mode int

const (
	ECB Mode = iota
	CBC
	CTR
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case CTR:
		return "CTR"
	default:
		return "Unknown"
	}
}

// IVSize длина IV (для CTR длина nonce), которую ожидает режим
func (m Mode) IVSize() int {
	switch m {
	case CBC:
		return aes.BlockSize
	case CTR:
		return 8
	default:
		return 0
	}
}

// ParseMode разбирает имя режима без учета регистра
func ParseMode(name string) (Mode, error) {
	switch strings.ToUpper(name) {
	case "ECB":
		return ECB, nil
	case "CBC":
		return CBC, nil
	case "CTR":
		return CTR, nil
	default:
		return 0, fmt.Errorf("cipher: неподдерживаемый режим %q", name)
	}
}

// Cipher связывает ключ и режим. Не хранит состояния между вызовами.
type Cipher struct {
	key  *aes.Key
	mode Mode
}

func NewCipher(key *aes.Key, mode Mode) (*Cipher, error) {
	switch mode {
	case ECB, CBC, CTR:
	default:
		return nil, fmt.Errorf("cipher: неподдерживаемый режим %v", mode)
	}
	return &Cipher{key: key, mode: mode}, nil
}

func (c *Cipher) Mode() Mode {
	return c.mode
}

// Encrypt шифрует данные. iv игнорируется в ECB, это IV в CBC и
// 8-байтовый little-endian nonce в CTR.
func (c *Cipher) Encrypt(plaintext, iv []byte) ([]byte, error) {
	switch c.mode {
	case ECB:
		return EncryptECB(plaintext, c.key), nil
	case CBC:
		return EncryptCBC(plaintext, c.key, iv)
	default:
		nonce, err := parseNonce(iv)
		if err != nil {
			return nil, err
		}
		return CTRTransform(plaintext, c.key, nonce), nil
	}
}

func (c *Cipher) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	switch c.mode {
	case ECB:
		return DecryptECB(ciphertext, c.key)
	case CBC:
		return DecryptCBC(ciphertext, c.key, iv)
	default:
		nonce, err := parseNonce(iv)
		if err != nil {
			return nil, err
		}
		return CTRTransform(ciphertext, c.key, nonce), nil
	}
}

func parseNonce(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: ожидается 8, получено %d", ErrWrongSizeNonce, len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}
