package aes

import (
	"encoding/binary"
	"fmt"
)

// Schedule расширенный ключ: 4*(Nr+1) 32-битных слов.
// Получается только через Key.Schedule; нулевое значение непригодно.
type Schedule struct {
	words  []uint32
	rounds int
}

func (s *Schedule) Rounds() int {
	return s.rounds
}

// Words возвращает копию слов расписания
func (s *Schedule) Words() []uint32 {
	return append([]uint32(nil), s.words...)
}

// RoundKey возвращает четыре слова раундового ключа round
func (s *Schedule) RoundKey(round int) [4]uint32 {
	if round < 0 || round > s.rounds {
		panic(fmt.Sprintf("aes: раунд %d вне диапазона 0..%d", round, s.rounds))
	}

	var rk [4]uint32
	copy(rk[:], s.words[4*round:4*round+4])
	return rk
}

func expandKey(key []byte) *Schedule {
	nk := len(key) / 4
	nr := nk + 6
	totalWords := 4 * (nr + 1)

	w := make([]uint32, totalWords)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ rcon[i/nk]
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}

	return &Schedule{words: w, rounds: nr}
}

func rotWord(word uint32) uint32 {
	return word<<8 | word>>24
}

func subWord(word uint32) uint32 {
	return uint32(sbox0[word>>24])<<24 |
		uint32(sbox0[word>>16&0xff])<<16 |
		uint32(sbox0[word>>8&0xff])<<8 |
		uint32(sbox0[word&0xff])
}
