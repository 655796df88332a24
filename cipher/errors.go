package cipher

import (
	"errors"

	"github.com/busserull/crypto/padding"
)

var (
	// ErrIrregularDecryptLength шифртекст ECB/CBC не кратен размеру блока
	ErrIrregularDecryptLength = errors.New("cipher: длина шифртекста не кратна размеру блока")
	// ErrWrongSizeIV IV для CBC не 16 байт
	ErrWrongSizeIV = errors.New("cipher: неверная длина IV")
	// ErrWrongSizeNonce nonce для CTR в Cipher не 8 байт
	ErrWrongSizeNonce = errors.New("cipher: неверная длина nonce")
	// ErrPadding расшифрованные данные не проходят проверку PKCS7
	ErrPadding = padding.ErrInvalidPadding
)
