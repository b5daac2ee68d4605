// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var cpfDigits = regexp.MustCompile(`^\d{11}$`)

// ValidateCPF checks a Brazilian CPF: strips formatting, requires 11 digits
// and verifies both check digits.
func ValidateCPF(cpf string) bool {
	// Clean the document number
	cleaned := strings.ReplaceAll(cpf, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if !cpfDigits.MatchString(cleaned) {
		return false
	}

	// Sequences like 00000000000 pass the checksum but are not valid CPFs
	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != cleaned[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(cleaned, 9) && checkDigit(cleaned, 10)
}

// checkDigit verifies the modulo-11 check digit at position pos, computed
// over the preceding pos digits.
func checkDigit(cpf string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cpf[i]-'0') * (pos + 1 - i)
	}
	expected := 11 - sum%11
	if expected >= 10 {
		expected = 0
	}
	return int(cpf[pos]-'0') == expected
}
