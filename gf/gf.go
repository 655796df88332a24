// Package gf реализует арифметику поля Галуа GF(2^8) с неприводимым
// полиномом AES x^8 + x^4 + x^3 + x + 1.
package gf

import "errors"

// Modulus хранится без старшего бита (x^8 подразумевается)
const Modulus byte = 0x1B

// ErrNoInverse возвращается для нулевого элемента
var ErrNoInverse = errors.New("gf: обратный элемент для 0 не существует")

// Xtime умножает элемент на x с приведением по модулю
func Xtime(b byte) byte {
	highBit := b & 0x80
	b <<= 1
	if highBit != 0 {
		b ^= Modulus
	}
	return b
}

// Mul выполняет умножение элементов в GF(2^8): удвоение a и накопление
// по установленным битам b
func Mul(a, b byte) byte {
	var result byte
	for b != 0 {
		if b&1 == 1 {
			result ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return result
}

// Inverse находит обратный элемент расширенным алгоритмом Евклида
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrNoInverse
	}

	r0, r1 := uint16(Modulus)|0x100, uint16(a)
	t0, t1 := uint16(0), uint16(1)

	for r1 != 0 {
		q, r := polyDivMod(r0, r1)
		r0, r1 = r1, r
		t0, t1 = t1, t0^polyMul(q, t1)
	}

	// r0 == 1, так как модуль неприводим
	return byte(t0), nil
}

func degree(poly uint16) int {
	deg := -1
	for poly > 0 {
		poly >>= 1
		deg++
	}
	return deg
}

func polyMul(a, b uint16) uint16 {
	var result uint16
	for b != 0 {
		if b&1 == 1 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return result
}

func polyDivMod(a, b uint16) (quotient, remainder uint16) {
	degB := degree(b)
	for degA := degree(a); degA >= degB; degA = degree(a) {
		shift := degA - degB
		quotient ^= 1 << shift
		a ^= b << shift
	}
	return quotient, a
}
