package aes

import "github.com/busserull/crypto/gf"

// Block 16 байт; байт i лежит в строке i%4 и столбце i/4 состояния
type Block [BlockSize]byte

// state матрица 4x4, индексируется [строка][столбец]
type state [4][4]byte

func bytesToState(b Block) state {
	var s state
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = b[i]
	}
	return s
}

func stateToBytes(s *state) Block {
	var b Block
	for i := 0; i < BlockSize; i++ {
		b[i] = s[i%4][i/4]
	}
	return b
}

func (s *state) subBytes() {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = sbox0[s[row][col]]
		}
	}
}

func (s *state) invSubBytes() {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = sbox1[s[row][col]]
		}
	}
}

// shiftRows циклически сдвигает строку r влево на r позиций
func (s *state) shiftRows() {
	for row := 1; row < 4; row++ {
		r := s[row]
		for col := 0; col < 4; col++ {
			s[row][col] = r[(col+row)%4]
		}
	}
}

func (s *state) invShiftRows() {
	for row := 1; row < 4; row++ {
		r := s[row]
		for col := 0; col < 4; col++ {
			s[row][(col+row)%4] = r[col]
		}
	}
}

func (s *state) mixColumns() {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gf.Xtime(a0) ^ gf.Mul(a1, 0x03) ^ a2 ^ a3
		s[1][col] = a0 ^ gf.Xtime(a1) ^ gf.Mul(a2, 0x03) ^ a3
		s[2][col] = a0 ^ a1 ^ gf.Xtime(a2) ^ gf.Mul(a3, 0x03)
		s[3][col] = gf.Mul(a0, 0x03) ^ a1 ^ a2 ^ gf.Xtime(a3)
	}
}

func (s *state) invMixColumns() {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gf.Mul(a0, 0x0e) ^ gf.Mul(a1, 0x0b) ^ gf.Mul(a2, 0x0d) ^ gf.Mul(a3, 0x09)
		s[1][col] = gf.Mul(a0, 0x09) ^ gf.Mul(a1, 0x0e) ^ gf.Mul(a2, 0x0b) ^ gf.Mul(a3, 0x0d)
		s[2][col] = gf.Mul(a0, 0x0d) ^ gf.Mul(a1, 0x09) ^ gf.Mul(a2, 0x0e) ^ gf.Mul(a3, 0x0b)
		s[3][col] = gf.Mul(a0, 0x0b) ^ gf.Mul(a1, 0x0d) ^ gf.Mul(a2, 0x09) ^ gf.Mul(a3, 0x0e)
	}
}

// addRoundKey: слово c раундового ключа дает столбец c, старший байт в строке 0
func (s *state) addRoundKey(rk [4]uint32) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] ^= byte(rk[col] >> (24 - 8*uint(row)))
		}
	}
}
