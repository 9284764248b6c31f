package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds output file names; most filesystems stop at 255 bytes.
const maxNameLength = 200

// ValidateOutputName validates a phrase that will become part of an output
// file name. The phrase is used literally, so it must not be able to escape
// the output directory.
//
// Validation rules:
//   - No control characters or null bytes
//   - No path separators (/ or \)
//   - No parent directory sequences (..)
//   - Maximum length of 200 bytes
//
// The empty phrase is allowed; it composes to an empty canvas.
func ValidateOutputName(name string) error {
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "phrase too long for a file name (max %d bytes)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "phrase contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "phrase cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "phrase cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateSyllableID validates a group id taken from a master syllable sheet
// before it is used as a file name component.
func ValidateSyllableID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "syllable id cannot be empty")
	}
	if err := ValidateOutputName(id); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid syllable id %q", id)
	}
	return nil
}

// ValidateAssetKey validates a word or syllable key before it is joined onto
// an asset directory. Keys come from user text, so they must name a file in
// that directory and nothing outside it.
func ValidateAssetKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "empty glyph key")
	}
	if strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return New(ErrCodeInvalidPath, "glyph key %q cannot contain path separators or ..", key)
	}
	return nil
}
