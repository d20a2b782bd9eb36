package validation

import (
	"fmt"
)

// Common validation constants
const (
	MaxSourceNameLen = 32   // Maximum settings source name length
	MaxFilePathLen   = 4096 // Maximum config, snapshot or env file path length
	MaxMethodLen     = 128  // Maximum method-call name length
)

// ValidateInputString performs common string validation to prevent injection attacks.
func ValidateInputString(input string, maxLen int, name string, additionalChecks func(rune) error) error {
	inputLen := len(input)
	if inputLen == 0 {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if inputLen > maxLen {
		return fmt.Errorf("%s too long (max %d)", name, maxLen)
	}

	for _, r := range input {
		if r < 0x20 || r == 0x7F {
			return fmt.Errorf("%s contains invalid characters", name)
		}

		if additionalChecks != nil {
			if err := additionalChecks(r); err != nil {
				return fmt.Errorf("%s validation failed: %w", name, err)
			}
		}
	}
	return nil
}

// ValidateSourceName validates settings source names ("android", "scutil", ...).
func ValidateSourceName(name string) error {
	return ValidateInputString(name, MaxSourceNameLen, "source name", func(r rune) error {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return fmt.Errorf("source name may only contain a-z, 0-9, '-' and '_'")
		}
		return nil
	})
}

// ValidateFilePath validates an optional file path. Empty paths are allowed.
func ValidateFilePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	return ValidateInputString(path, MaxFilePathLen, fieldName, nil)
}

// ValidateMethodName validates method-call names registered on a handler.
func ValidateMethodName(method string) error {
	return ValidateInputString(method, MaxMethodLen, "method name", func(r rune) error {
		if r == ' ' || r == '/' {
			return fmt.Errorf("method name cannot contain spaces or slashes")
		}
		return nil
	})
}
