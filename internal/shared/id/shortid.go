package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixIssue        = "iss"
	PrefixUser         = "usr"
	PrefixDepartment   = "dep"
	PrefixComment      = "cmt"
	PrefixProposal     = "prp"
	PrefixNotification = "ntf"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidatePrefix checks if the prefixed ID has the expected prefix and a
// well-formed base62 body.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, body, ok := strings.Cut(prefixedID, "_")
	if !ok || body == "" {
		return fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	for i := 0; i < len(body); i++ {
		if !strings.ContainsRune(alphabet, rune(body[i])) {
			return fmt.Errorf("invalid character in ID: %s", prefixedID)
		}
	}
	return nil
}

func NewIssueID() string        { return MustGenerateWithPrefix(PrefixIssue, DefaultLength) }
func NewUserID() string         { return MustGenerateWithPrefix(PrefixUser, DefaultLength) }
func NewDepartmentID() string   { return MustGenerateWithPrefix(PrefixDepartment, DefaultLength) }
func NewCommentID() string      { return MustGenerateWithPrefix(PrefixComment, DefaultLength) }
func NewProposalID() string     { return MustGenerateWithPrefix(PrefixProposal, DefaultLength) }
func NewNotificationID() string { return MustGenerateWithPrefix(PrefixNotification, DefaultLength) }
