package translate

import (
	"errors"
	"fmt"
	"strings"
)

// MaxWords is the longest text accepted for a single translation.
const MaxWords = 500

var (
	ErrEmptyText           = errors.New("text cannot be empty")
	ErrTooLong             = errors.New("text is too long")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrSameLanguage        = errors.New("source and target languages must be different")
)

// Validate checks a translation request before it is sent anywhere.
func Validate(text, source, target string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if n := len(strings.Fields(text)); n > MaxWords {
		return fmt.Errorf("%w: %d words, maximum is %d", ErrTooLong, n, MaxWords)
	}
	if !Supported(source) {
		return fmt.Errorf("%w: source %q", ErrUnsupportedLanguage, source)
	}
	if !Supported(target) {
		return fmt.Errorf("%w: target %q", ErrUnsupportedLanguage, target)
	}
	if source == target {
		return ErrSameLanguage
	}
	return nil
}
