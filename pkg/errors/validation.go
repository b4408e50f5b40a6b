package errors

import (
	"path/filepath"
	"unicode"
)

// ValidatePath validates a single command-line file path.
//
// The rules are intentionally simple:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 4096 characters
func ValidatePath(role, path string) error {
	if path == "" {
		return New(ErrCodeUsage, "%s path cannot be empty", role)
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeUsage, "%s path too long (max %d characters)", role, maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeUsage, "%s path contains invalid characters", role)
		}
	}

	return nil
}

// ValidatePaths validates the input and output paths of a conversion.
// Besides the per-path rules of [ValidatePath], the two paths must not
// refer to the same file, since the output would replace the scene before
// it could be read again.
func ValidatePaths(input, output string) error {
	if err := ValidatePath("input", input); err != nil {
		return err
	}
	if err := ValidatePath("output", output); err != nil {
		return err
	}

	in, errIn := filepath.Abs(input)
	out, errOut := filepath.Abs(output)
	if errIn == nil && errOut == nil && in == out {
		return New(ErrCodeUsage, "input and output must be different files: %s", input)
	}

	return nil
}
