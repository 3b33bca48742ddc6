package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name before it is joined onto the
// repository root. A package is a single top-level directory, so the rules are
// strict:
//   - No empty names
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No path separators or parent-directory references
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPackage, "package name cannot be %q", name)
	}

	for _, pattern := range []string{"/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputDir validates the output directory setting.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidConfig, "output directory cannot be empty")
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "output directory contains invalid characters")
		}
	}
	return nil
}
