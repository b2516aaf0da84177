package weather

import (
	"fmt"
	"unicode/utf8"

	"weathertext.app/pkg/errors"
)

// InsertAt places text into document at a rune offset
func InsertAt(document string, position int, text string) (string, error) {
	length := utf8.RuneCountInString(document)
	if position < 0 || position > length {
		return "", errors.NewValidationError(
			fmt.Sprintf("insertion position %d is outside the document (0..%d)", position, length))
	}

	runes := []rune(document)
	head := string(runes[:position])
	tail := string(runes[position:])
	return head + text + tail, nil
}
