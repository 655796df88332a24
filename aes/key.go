// Package aes реализует блочный шифр AES (Rijndael со 128-битным блоком)
// для ключей 128, 192 и 256 бит без опоры на криптографические библиотеки.
package aes

import (
	"errors"
	"strconv"
)

// BlockSize размер блока AES в байтах
const BlockSize = 16

// ErrNonstandardKeyLength возвращается для ключа длиной не 16, 24 или 32 байта
var ErrNonstandardKeyLength = errors.New("aes: нестандартная длина ключа")

// KeySizeError сообщает длину отвергнутого ключа
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: нестандартная длина ключа " + strconv.Itoa(int(k))
}

func (k KeySizeError) Is(target error) bool {
	return target == ErrNonstandardKeyLength
}

type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "Unknown"
	}
}

// Rounds возвращает число раундов Nr для варианта
func (v Variant) Rounds() int {
	return v.KeySize()/4 + 6
}

// KeySize возвращает длину ключа в байтах
func (v Variant) KeySize() int {
	switch v {
	case AES192:
		return 24
	case AES256:
		return 32
	default:
		return 16
	}
}

// Key хранит ключевой материал и расписание ключей. После создания не
// изменяется и может использоваться из нескольких горутин.
// Корректный Key строит только NewKey; нулевое значение Key{} непригодно.
type Key struct {
	variant  Variant
	raw      []byte
	schedule *Schedule
}

// NewKey проверяет длину ключа и строит расписание
func NewKey(raw []byte) (*Key, error) {
	var variant Variant
	switch len(raw) {
	case 16:
		variant = AES128
	case 24:
		variant = AES192
	case 32:
		variant = AES256
	default:
		return nil, KeySizeError(len(raw))
	}

	k := &Key{
		variant: variant,
		raw:     append([]byte(nil), raw...),
	}
	k.schedule = expandKey(k.raw)
	return k, nil
}

func (k *Key) Variant() Variant {
	return k.variant
}

func (k *Key) Rounds() int {
	return k.schedule.rounds
}

// Bytes возвращает копию ключевого материала
func (k *Key) Bytes() []byte {
	return append([]byte(nil), k.raw...)
}

func (k *Key) Schedule() *Schedule {
	return k.schedule
}

// BlockSize, Encrypt и Decrypt реализуют crypto/cipher.Block

func (k *Key) BlockSize() int {
	return BlockSize
}

// Encrypt шифрует первый блок src в dst. dst и src могут совпадать.
func (k *Key) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: входной блок неполный")
	}
	if len(dst) < BlockSize {
		panic("aes: выходной блок неполный")
	}

	var in Block
	copy(in[:], src)
	out := Cipher(in, k.schedule)
	copy(dst, out[:])
}

// Decrypt расшифровывает первый блок src в dst. dst и src могут совпадать.
func (k *Key) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: входной блок неполный")
	}
	if len(dst) < BlockSize {
		panic("aes: выходной блок неполный")
	}

	var in Block
	copy(in[:], src)
	out := InvCipher(in, k.schedule)
	copy(dst, out[:])
}
