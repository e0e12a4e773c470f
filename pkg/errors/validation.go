package errors

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// SourceExtension is the file extension expected for plotting scripts.
const SourceExtension = ".py"

// ValidateSourcePath checks that path names an existing regular file that the
// code auditor can read.
//
// The returned warning is non-empty when the file exists but does not carry
// the [SourceExtension]; callers report it and continue. The error is non-nil
// when the file is missing or unusable:
//   - empty path or control characters: INVALID_PATH
//   - missing file: FILE_NOT_FOUND
//   - directory: INVALID_PATH
func ValidateSourcePath(path string) (warning string, err error) {
	if path == "" {
		return "", New(ErrCodeInvalidPath, "source path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return "", New(ErrCodeInvalidPath, "source path contains invalid characters")
		}
	}

	info, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		return "", New(ErrCodeFileNotFound, "file not found: %s", path)
	}
	if statErr != nil {
		return "", Wrap(ErrCodeInvalidPath, statErr, "stat %s", path)
	}
	if info.IsDir() {
		return "", New(ErrCodeInvalidPath, "%s is a directory", path)
	}

	if ext := filepath.Ext(path); ext != SourceExtension {
		if ext == "" {
			ext = "(none)"
		}
		return "Expected " + SourceExtension + " file, got " + ext, nil
	}
	return "", nil
}

// ValidateFormat checks that format is one of the supported output encodings.
// Comparison is case-insensitive and ignores a leading dot.
func ValidateFormat(format string, supported []string) error {
	f := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if f == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	for _, s := range supported {
		if f == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of: %s)", format, strings.Join(supported, ", "))
}
