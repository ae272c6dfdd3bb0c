package main

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// decode converts data to UTF-8. The label is tried first; when it is empty
// or unknown the charset is detected. It returns the charset that was used.
func decode(data []byte, label string) (string, string, error) {
	if len(data) == 0 {
		return "", label, nil
	}

	reader, used := utf8Reader(data, label)

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", used, fmt.Errorf("decoding %s input: %w", used, err)
	}

	if !utf8.Valid(decoded) {
		return string(bytes.ToValidUTF8(decoded, []byte("�"))), used, nil
	}

	return string(decoded), used, nil
}

func utf8Reader(data []byte, label string) (io.Reader, string) {
	if label != "" {
		if reader, err := charset.NewReaderLabel(label, bytes.NewReader(data)); err == nil {
			return reader, label
		}
	}

	if utf8.Valid(data) {
		return bytes.NewReader(data), "utf-8"
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	reader, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	return reader, best.Charset
}
