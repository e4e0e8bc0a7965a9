package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidData = errors.New("invalid input data")
	ErrMalformed   = errors.New("malformed escape sequence")
	ErrEmptyText   = errors.New("Please enter text to generate a QR code.")
	ErrReadFile    = errors.New("Failed to read file.")
	ErrNoQRCode    = errors.New("No QR code found in image.")
)

type (
	Mode      int
	Algorithm int
)

const (
	ModeEncode Mode = iota
	ModeDecode
)

const (
	AlgorithmModern Algorithm = iota // encodeURIComponent
	AlgorithmLegacy                  // escape
)

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

func (a Algorithm) String() string {
	if a == AlgorithmLegacy {
		return "legacy"
	}
	return "modern"
}

// ParseMode принимает "encode"/"decode", пустая строка - encode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "encode":
		return ModeEncode, nil
	case "decode":
		return ModeDecode, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidData, s)
}

// ParseAlgorithm принимает "modern"/"legacy", пустая строка - modern
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "modern":
		return AlgorithmModern, nil
	case "legacy":
		return AlgorithmLegacy, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidData, s)
}

type (
	EncodeRequest struct {
		Text      string
		Mode      Mode
		Algorithm Algorithm
	}

	// EncodeResult - либо Text, либо Message, никогда оба сразу
	EncodeResult struct {
		Text    string
		Message string
		failed  bool
	}
)

func EncodeSuccess(text string) EncodeResult {
	return EncodeResult{Text: text}
}

func EncodeFailure(message string) EncodeResult {
	return EncodeResult{Message: message, failed: true}
}

func (r EncodeResult) OK() bool {
	return !r.failed
}
