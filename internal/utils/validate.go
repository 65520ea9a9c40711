package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether the address looks deliverable and returns it
// normalized to lower case.
func ValidateEmail(email string) (bool, string) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return emailPattern.MatchString(normalized), normalized
}

// ValidatePhone checks a Saudi mobile number in local (05x) or international
// (+9665x) form and returns it normalized to local form.
func ValidatePhone(phone string) (bool, string) {
	normalized := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if strings.HasPrefix(normalized, "+966") {
		normalized = "0" + normalized[4:]
	}
	if len(normalized) != 10 || !strings.HasPrefix(normalized, "05") {
		return false, normalized
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false, normalized
		}
	}
	return true, normalized
}

// GenerateOTPCode generates a random 6-digit verification code
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateResetToken generates an opaque password-reset token
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
