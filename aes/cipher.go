package aes

// Cipher шифрует один блок по расписанию s, полученному от NewKey
func Cipher(in Block, s *Schedule) Block {
	st := bytesToState(in)
	st.addRoundKey(s.RoundKey(0))

	for round := 1; round < s.rounds; round++ {
		st.subBytes()
		st.shiftRows()
		st.mixColumns()
		st.addRoundKey(s.RoundKey(round))
	}

	st.subBytes()
	st.shiftRows()
	st.addRoundKey(s.RoundKey(s.rounds))

	return stateToBytes(&st)
}

// InvCipher расшифровывает один блок по расписанию s, полученному от NewKey
func InvCipher(in Block, s *Schedule) Block {
	st := bytesToState(in)
	st.addRoundKey(s.RoundKey(s.rounds))

	for round := s.rounds - 1; round > 0; round-- {
		st.invShiftRows()
		st.invSubBytes()
		st.addRoundKey(s.RoundKey(round))
		st.invMixColumns()
	}

	st.invShiftRows()
	st.invSubBytes()
	st.addRoundKey(s.RoundKey(0))

	return stateToBytes(&st)
}
