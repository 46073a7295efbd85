// Package cpf validates, formats and masks Brazilian CPF numbers.
package cpf

import "strings"

const cpfLength = 11

// Clean strips everything that is not a digit.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidFormat reports whether the cleaned value has exactly 11 digits.
func IsValidFormat(s string) bool {
	return len(Clean(s)) == cpfLength
}

// IsValid reports whether the CPF checksum holds. Repeated-digit sequences
// such as "11111111111" pass the checksum but are not real CPFs, so they
// are rejected explicitly.
func IsValid(s string) bool {
	digits := Clean(s)
	if len(digits) != cpfLength {
		return false
	}

	allSame := true
	for i := 1; i < cpfLength; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the verifier digit over the first n digits, with
// weights n+1 down to 2 and the mod-11 rule.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// Format renders a CPF as XXX.XXX.XXX-XX. Values that do not clean to 11
// digits are returned unchanged.
func Format(s string) string {
	digits := Clean(s)
	if len(digits) != cpfLength {
		return s
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Mask renders a CPF as XXX.***.**X-XX, keeping only the first three digits,
// the ninth digit and the check digits visible. Used anywhere a CPF is shown
// without the owner being the viewer.
func Mask(s string) string {
	digits := Clean(s)
	if len(digits) != cpfLength {
		return s
	}
	return digits[0:3] + ".***.**" + digits[8:9] + "-" + digits[9:11]
}
