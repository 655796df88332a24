// Команда aescrypt шифрует и расшифровывает файлы в режимах ECB, CBC и CTR.
//
//	aescrypt -mode cbc -key 000102030405060708090a0b0c0d0e0f -in msg.txt -out msg.bin
//	aescrypt -d -mode cbc -key 000102030405060708090a0b0c0d0e0f -in msg.bin
//
// Если IV (nonce для CTR) не задан, при шифровании он генерируется и
// записывается перед шифртекстом, а при расшифровании читается оттуда же.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/busserull/crypto/aes"
	"github.com/busserull/crypto/cipher"
)

type options struct {
	mode    cipher.Mode
	key     []byte
	iv      []byte
	decrypt bool
	hex     bool
	in      string
	out     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("aescrypt: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("aescrypt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	modeName := fs.String("mode", "cbc", "режим: ecb, cbc или ctr")
	keyHex := fs.String("key", "", "ключ в hex (16, 24 или 32 байта)")
	ivHex := fs.String("iv", "", "IV в hex (16 байт для cbc, 8 байт nonce для ctr)")
	decrypt := fs.Bool("d", false, "расшифровать")
	useHex := fs.Bool("hex", false, "шифртекст в hex")
	in := fs.String("in", "", "входной файл (по умолчанию stdin)")
	out := fs.String("out", "", "выходной файл (по умолчанию stdout)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	mode, err := cipher.ParseMode(*modeName)
	if err != nil {
		return nil, err
	}
	if *keyHex == "" {
		return nil, errors.New("не задан ключ -key")
	}
	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора ключа: %w", err)
	}

	var iv []byte
	if *ivHex != "" {
		if mode == cipher.ECB {
			return nil, errors.New("режим ECB не использует IV")
		}
		if iv, err = hex.DecodeString(*ivHex); err != nil {
			return nil, fmt.Errorf("ошибка разбора IV: %w", err)
		}
	}

	return &options{
		mode:    mode,
		key:     key,
		iv:      iv,
		decrypt: *decrypt,
		hex:     *useHex,
		in:      *in,
		out:     *out,
	}, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	key, err := aes.NewKey(opts.key)
	if err != nil {
		return err
	}
	c, err := cipher.NewCipher(key, opts.mode)
	if err != nil {
		return err
	}

	data, err := readInput(opts.in, stdin)
	if err != nil {
		return fmt.Errorf("ошибка чтения входных данных: %w", err)
	}

	var result []byte
	if opts.decrypt {
		result, err = decrypt(c, opts, data)
	} else {
		result, err = encrypt(c, opts, data)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(opts.out, stdout, result); err != nil {
		return fmt.Errorf("ошибка записи результата: %w", err)
	}
	return nil
}

func encrypt(c *cipher.Cipher, opts *options, data []byte) ([]byte, error) {
	iv := opts.iv
	var prefix []byte
	if iv == nil && opts.mode != cipher.ECB {
		iv = make([]byte, opts.mode.IVSize())
		if _, err := rand.Read(iv); err != nil {
			return nil, fmt.Errorf("ошибка генерации IV: %w", err)
		}
		prefix = iv
	}

	ciphertext, err := c.Encrypt(data, iv)
	if err != nil {
		return nil, fmt.Errorf("ошибка шифрования: %w", err)
	}
	ciphertext = append(prefix, ciphertext...)

	if opts.hex {
		return []byte(hex.EncodeToString(ciphertext) + "\n"), nil
	}
	return ciphertext, nil
}

func decrypt(c *cipher.Cipher, opts *options, data []byte) ([]byte, error) {
	if opts.hex {
		decoded, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора hex: %w", err)
		}
		data = decoded
	}

	iv := opts.iv
	if iv == nil && opts.mode != cipher.ECB {
		size := opts.mode.IVSize()
		if len(data) < size {
			return nil, fmt.Errorf("недостаточно данных для IV: %d < %d", len(data), size)
		}
		iv, data = data[:size], data[size:]
	}

	plaintext, err := c.Decrypt(data, iv)
	if err != nil {
		return nil, fmt.Errorf("ошибка дешифрования: %w", err)
	}
	return plaintext, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
