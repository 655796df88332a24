package aes

import (
	stdaes "crypto/aes"
	stdcipher "crypto/cipher"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/busserull/crypto/gf"
)

var _ stdcipher.Block = (*Key)(nil)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex %q: %v", s, err)
	}
	return b
}

func TestCipherVectors(t *testing.T) {
	tests := []struct {
		key     string
		pt      string
		ct      string
		variant Variant
	}{
		// FIPS 197 Appendix C
		{"000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a", AES128},
		{"000102030405060708090a0b0c0d0e0f1011121314151617", "00112233445566778899aabbccddeeff", "dda97ca4864cdfe06eaf70a0ec0d7191", AES192},
		{"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "00112233445566778899aabbccddeeff", "8ea2b7ca516745bfeafc49904b496089", AES256},
		// FIPS 197 Appendix B
		{"2b7e151628aed2a6abf7158809cf4f3c", "3243f6a8885a308d313198a2e0370734", "3925841d02dc09fbdc118597196a0b32", AES128},
	}

	for _, tt := range tests {
		key, err := NewKey(mustHex(t, tt.key))
		if err != nil {
			t.Fatalf("NewKey(%s): %v", tt.key, err)
		}
		if key.Variant() != tt.variant {
			t.Errorf("NewKey(%s).Variant() = %v, want %v", tt.key, key.Variant(), tt.variant)
		}

		var pt Block
		copy(pt[:], mustHex(t, tt.pt))

		ct := Cipher(pt, key.Schedule())
		if got := hex.EncodeToString(ct[:]); got != tt.ct {
			t.Errorf("%v(%s, %s) = %s, want %s", tt.variant, tt.key, tt.pt, got, tt.ct)
		}

		back := InvCipher(ct, key.Schedule())
		if back != pt {
			t.Errorf("InvCipher(%s) = %x, want %s", tt.ct, back, tt.pt)
		}
	}
}

func TestKeyExpansion(t *testing.T) {
	tests := []struct {
		key    string
		rounds int
		words  map[int]uint32
	}{
		// FIPS 197 Appendix A
		{"2b7e151628aed2a6abf7158809cf4f3c", 10, map[int]uint32{0: 0x2b7e1516, 4: 0xa0fafe17, 5: 0x88542cb1, 43: 0xb6630ca6}},
		{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", 12, map[int]uint32{6: 0xfe0c91f7, 51: 0x01002202}},
		{"603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", 14, map[int]uint32{8: 0x9ba35411, 12: 0xa8b09c1a, 59: 0x706c631e}},
	}

	for _, tt := range tests {
		key, err := NewKey(mustHex(t, tt.key))
		if err != nil {
			t.Fatal(err)
		}

		s := key.Schedule()
		if s.Rounds() != tt.rounds || key.Rounds() != tt.rounds {
			t.Errorf("rounds for %s = %d, want %d", tt.key, s.Rounds(), tt.rounds)
		}
		if key.Variant().Rounds() != tt.rounds {
			t.Errorf("%v.Rounds() = %d, want %d", key.Variant(), key.Variant().Rounds(), tt.rounds)
		}

		words := s.Words()
		if len(words) != 4*(tt.rounds+1) {
			t.Fatalf("len(Words()) = %d, want %d", len(words), 4*(tt.rounds+1))
		}
		for i, want := range tt.words {
			if words[i] != want {
				t.Errorf("w[%d] for %s = %08x, want %08x", i, tt.key, words[i], want)
			}
		}

		last := s.RoundKey(tt.rounds)
		if last[3] != words[len(words)-1] {
			t.Errorf("RoundKey(%d)[3] = %08x, want %08x", tt.rounds, last[3], words[len(words)-1])
		}
	}
}

func TestScheduleWordsIsCopy(t *testing.T) {
	key, err := NewKey(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}

	words := key.Schedule().Words()
	words[0] ^= 0xffffffff
	if key.Schedule().Words()[0] == words[0] {
		t.Error("Words() exposes the schedule")
	}
}

func TestNewKeyLength(t *testing.T) {
	for n := 0; n <= 40; n++ {
		_, err := NewKey(make([]byte, n))
		switch n {
		case 16, 24, 32:
			if err != nil {
				t.Errorf("NewKey(%d bytes): %v", n, err)
			}
		default:
			if !errors.Is(err, ErrNonstandardKeyLength) {
				t.Errorf("NewKey(%d bytes) error = %v, want ErrNonstandardKeyLength", n, err)
			}
			var sizeErr KeySizeError
			if !errors.As(err, &sizeErr) || int(sizeErr) != n {
				t.Errorf("NewKey(%d bytes) error = %v, want KeySizeError(%d)", n, err, n)
			}
		}
	}
}

func TestKeyIsImmutable(t *testing.T) {
	raw := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	key, err := NewKey(raw)
	if err != nil {
		t.Fatal(err)
	}

	raw[0] = 0xff
	got := key.Bytes()
	if got[0] != 0x00 {
		t.Fatal("NewKey kept a reference to the caller's slice")
	}
	got[1] = 0xff
	if key.Bytes()[1] != 0x01 {
		t.Fatal("Bytes() exposes the key material")
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{16, 24, 32} {
		for i := 0; i < 50; i++ {
			raw := make([]byte, size)
			rng.Read(raw)
			src := make([]byte, BlockSize)
			rng.Read(src)

			key, err := NewKey(raw)
			if err != nil {
				t.Fatal(err)
			}
			ref, err := stdaes.NewCipher(raw)
			if err != nil {
				t.Fatal(err)
			}

			got := make([]byte, BlockSize)
			want := make([]byte, BlockSize)
			key.Encrypt(got, src)
			ref.Encrypt(want, src)
			if string(got) != string(want) {
				t.Fatalf("Encrypt(%x, %x) = %x, want %x", raw, src, got, want)
			}

			key.Decrypt(got, want)
			if string(got) != string(src) {
				t.Fatalf("Decrypt(%x, %x) = %x, want %x", raw, want, got, src)
			}
		}
	}
}

func TestEncryptInPlace(t *testing.T) {
	key, err := NewKey(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatal(err)
	}

	buf := mustHex(t, "00112233445566778899aabbccddeeff")
	key.Encrypt(buf, buf)
	if got := hex.EncodeToString(buf); got != "69c4e0d86a7b0430d8cdb78070b4c55a" {
		t.Errorf("in-place Encrypt = %s", got)
	}
	key.Decrypt(buf, buf)
	if got := hex.EncodeToString(buf); got != "00112233445566778899aabbccddeeff" {
		t.Errorf("in-place Decrypt = %s", got)
	}
}

func affineTransform(b byte) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		bit := (b >> i) & 1
		bit ^= (b >> ((i + 4) % 8)) & 1
		bit ^= (b >> ((i + 5) % 8)) & 1
		bit ^= (b >> ((i + 6) % 8)) & 1
		bit ^= (b >> ((i + 7) % 8)) & 1
		result |= bit << i
	}
	return result ^ 0x63
}

func TestSBoxTables(t *testing.T) {
	for i := 0; i < 256; i++ {
		val := byte(i)
		if val != 0 {
			inv, err := gf.Inverse(val)
			if err != nil {
				t.Fatal(err)
			}
			val = inv
		}

		if want := affineTransform(val); sbox0[i] != want {
			t.Errorf("sbox0[%#02x] = %#02x, want %#02x", i, sbox0[i], want)
		}
		if sbox1[sbox0[i]] != byte(i) {
			t.Errorf("sbox1[sbox0[%#02x]] = %#02x", i, sbox1[sbox0[i]])
		}
	}
}

func TestRcon(t *testing.T) {
	rc := byte(1)
	for i := 1; i < len(rcon); i++ {
		if rcon[i] != uint32(rc)<<24 {
			t.Errorf("rcon[%d] = %08x, want %08x", i, rcon[i], uint32(rc)<<24)
		}
		rc = gf.Xtime(rc)
	}
}

func TestRoundTransforms(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i)
	}

	s := bytesToState(b)
	if s[1][0] != 1 || s[0][1] != 4 || s[3][3] != 15 {
		t.Fatalf("bytesToState is not column-major: %v", s)
	}

	s.shiftRows()
	want := Block{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if got := stateToBytes(&s); got != want {
		t.Errorf("shiftRows = %v, want %v", got, want)
	}
	s.invShiftRows()
	if got := stateToBytes(&s); got != b {
		t.Errorf("invShiftRows(shiftRows) = %v, want %v", got, b)
	}

	// столбцы-примеры MixColumns
	col := Block{0xdb, 0x13, 0x53, 0x45, 0xf2, 0x0a, 0x22, 0x5c, 0x01, 0x01, 0x01, 0x01, 0xc6, 0xc6, 0xc6, 0xc6}
	mixed := Block{0x8e, 0x4d, 0xa1, 0xbc, 0x9f, 0xdc, 0x58, 0x9d, 0x01, 0x01, 0x01, 0x01, 0xc6, 0xc6, 0xc6, 0xc6}
	s = bytesToState(col)
	s.mixColumns()
	if got := stateToBytes(&s); got != mixed {
		t.Errorf("mixColumns = %x, want %x", got, mixed)
	}
	s.invMixColumns()
	if got := stateToBytes(&s); got != col {
		t.Errorf("invMixColumns(mixColumns) = %x, want %x", got, col)
	}

	s = bytesToState(b)
	s.subBytes()
	s.invSubBytes()
	if got := stateToBytes(&s); got != b {
		t.Errorf("invSubBytes(subBytes) = %v, want %v", got, b)
	}
}

func TestEncryptPanicsOnShortBlock(t *testing.T) {
	key, err := NewKey(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Encrypt with a short src did not panic")
		}
	}()
	key.Encrypt(make([]byte, 16), make([]byte, 15))
}

func TestVariantString(t *testing.T) {
	for v, want := range map[Variant]string{AES128: "AES-128", AES192: "AES-192", AES256: "AES-256", Variant(9): "Unknown"} {
		if v.String() != want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(v), v.String(), want)
		}
	}
}

func TestZeroScheduleIsUnusable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Cipher with a zero Schedule did not panic")
		}
	}()
	Cipher(Block{}, &Schedule{})
}
