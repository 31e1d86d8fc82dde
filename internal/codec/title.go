// Package codec сжимает заголовки элементов перед записью в БД.
//
// Формат совместим с zlib.deflateSync/inflateSync из Node.js:
// поток zlib (RFC 1950) поверх DEFLATE, затем стандартный base64.
package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
)

// EncodeTitle сжимает заголовок и кодирует результат в base64.
func EncodeTitle(title string) (string, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(title)); err != nil {
		return "", fmt.Errorf("compress title: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress title: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeTitle восстанавливает заголовок, сохранённый EncodeTitle.
func DecodeTitle(stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("decode title: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decompress title: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("decompress title: %w", err)
	}
	return string(out), nil
}
