package cipher

import (
	"encoding/binary"

	"github.com/busserull/crypto/aes"
)

// counterBlock собирает блок счетчика: nonce и counter, оба little-endian.
// Порядок байтов отличается от NIST SP 800-38A и должен сохраняться.
func counterBlock(nonce, counter uint64) aes.Block {
	var b aes.Block
	binary.LittleEndian.PutUint64(b[:8], nonce)
	binary.LittleEndian.PutUint64(b[8:], counter)
	return b
}

// CTRTransform шифрует или расшифровывает buf в режиме счетчика. Результат имеет ту же длину.
func CTRTransform(buf []byte, key *aes.Key, nonce uint64) []byte {
	out := make([]byte, len(buf))
	blocks := (len(buf) + aes.BlockSize - 1) / aes.BlockSize
	schedule := key.Schedule()

	forEachBlock(blocks, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ks := aes.Cipher(counterBlock(nonce, uint64(i)), schedule)
			pos := i * aes.BlockSize
			xorBytes(out[pos:], buf[pos:], ks[:])
		}
	})

	return out
}

// Keystream курсор по ленивой бесконечной гамме CTR для пары (ключ, nonce).
// Блоки гаммы вычисляются по мере чтения. Keystream не безопасен для
// одновременного использования из нескольких горутин.
type Keystream struct {
	schedule *aes.Schedule
	nonce    uint64
	counter  uint64
	block    aes.Block
	index    int
}

// NewKeystream возвращает курсор, стоящий на нулевом байте гаммы
func NewKeystream(key *aes.Key, nonce uint64) *Keystream {
	return &Keystream{
		schedule: key.Schedule(),
		nonce:    nonce,
		index:    aes.BlockSize,
	}
}

func (k *Keystream) makeBlock() {
	k.block = aes.Cipher(counterBlock(k.nonce, k.counter), k.schedule)
	k.counter++
	k.index = 0
}

// Next возвращает очередной байт гаммы
func (k *Keystream) Next() byte {
	if k.index >= aes.BlockSize {
		k.makeBlock()
	}

	b := k.block[k.index]
	k.index++
	return b
}

// Reset возвращает курсор к началу гаммы (счетчик 0)
func (k *Keystream) Reset() {
	k.Seek(0)
}

// Seek ставит курсор на байт offset без вычисления предыдущих блоков
func (k *Keystream) Seek(offset uint64) {
	k.counter = offset / aes.BlockSize
	k.index = aes.BlockSize
	if rem := int(offset % aes.BlockSize); rem != 0 {
		k.makeBlock()
		k.index = rem
	}
}

// Offset возвращает номер следующего байта гаммы
func (k *Keystream) Offset() uint64 {
	return k.counter*aes.BlockSize - uint64(aes.BlockSize-k.index)
}

// Read заполняет p байтами гаммы. Ошибок не бывает.
func (k *Keystream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = k.Next()
	}
	return len(p), nil
}

// XORKeyStream реализует crypto/cipher.Stream
func (k *Keystream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("cipher: выходной буфер меньше входного")
	}
	for i, b := range src {
		dst[i] = b ^ k.Next()
	}
}
