package cipher

import (
	stdaes "crypto/aes"
	stdcipher "crypto/cipher"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/busserull/crypto/aes"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex %q: %v", s, err)
	}
	return b
}

func mustKey(t *testing.T, raw []byte) *aes.Key {
	t.Helper()
	key, err := aes.NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey(%x): %v", raw, err)
	}
	return key
}

func mustStdBlock(t *testing.T, raw []byte) stdcipher.Block {
	t.Helper()
	block, err := stdaes.NewCipher(raw)
	if err != nil {
		t.Fatalf("crypto/aes.NewCipher(%x): %v", raw, err)
	}
	return block
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// withThreshold временно меняет порог распараллеливания
func withThreshold(t *testing.T, n int) {
	t.Helper()
	old := parallelThreshold
	parallelThreshold = n
	t.Cleanup(func() { parallelThreshold = old })
}
