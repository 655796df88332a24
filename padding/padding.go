// Package padding реализует набивку PKCS7.
package padding

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding возвращается, если хвост данных не образует набивку PKCS7
var ErrInvalidPadding = errors.New("padding: неверный padding")

// Pad дополняет данные до границы блока. При кратной длине добавляется
// полный блок набивки. Исходный срез не изменяется.
func Pad(data []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 255 {
		panic(fmt.Sprintf("padding: недопустимый размер блока %d", blockSize))
	}

	padding := blockSize - (len(data) % blockSize)
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

// UnpadLength возвращает длину данных без набивки. Если набивка неверна,
// возвращается полная длина len(data). Размер блока не проверяется:
// значение набивки больше блока допустимо, если хвост совпадает.
func UnpadLength(data []byte) int {
	length := len(data)
	if length == 0 {
		return 0
	}

	padding := int(data[length-1])
	if padding == 0 || padding > length {
		return length
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return length
		}
	}

	return length - padding
}

// Unpad отбрасывает набивку PKCS7
func Unpad(data []byte) ([]byte, error) {
	end := UnpadLength(data)
	if end == len(data) {
		return nil, ErrInvalidPadding
	}
	return data[:end], nil
}
