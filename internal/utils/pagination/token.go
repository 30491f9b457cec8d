package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeCurrencyToken creates a base64 encoded token pointing at the last
// currency returned by a list call, identified by its namespace and code.
func EncodeCurrencyToken(namespace, code string) string {
	return EncodeMultiFieldToken(namespace, code)
}

// DecodeCurrencyToken parses a token created by EncodeCurrencyToken.
func DecodeCurrencyToken(token string) (string, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (empty field)")
	}
	return parts[0], parts[1], nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
