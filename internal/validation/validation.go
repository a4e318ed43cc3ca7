// Package validation holds the pure request checks run before any store
// access. Every failure wraps ErrInvalidArgument.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrInvalidArgument = errors.New("invalid argument")

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// DecodePayload parses a request body that must be a non-empty JSON object.
// Numbers stay json.Number so integer checks are exact.
func DecodePayload(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, invalid("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalid("malformed json: %v", err)
	}
	if dec.More() {
		return nil, invalid("trailing data after json value")
	}

	payload, ok := v.(map[string]any)
	if !ok {
		return nil, invalid("payload must be a json object")
	}
	if len(payload) == 0 {
		return nil, invalid("payload is empty")
	}
	return payload, nil
}

// asInteger reports whether v is an integral JSON number.
func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// NumericToken accepts a digit-only string or an integer and returns its
// value.
func NumericToken(v any) (int64, error) {
	if s, ok := v.(string); ok {
		if !digitsOnly.MatchString(s) {
			return 0, invalid("%q is not a number", s)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, invalid("%q is out of range", s)
		}
		return n, nil
	}
	if n, ok := asInteger(v); ok {
		return n, nil
	}
	return 0, invalid("expected integer or digit string, got %T", v)
}

// PathID validates an id taken from the URL path.
func PathID(raw string) (uint, error) {
	if !digitsOnly.MatchString(raw) {
		return 0, invalid("id %q is not a number", raw)
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, invalid("id %q is out of range", raw)
	}
	return uint(n), nil
}

// Page reads the page query parameter. Missing or non-integer values fall
// back to the first page; range checks happen later.
func Page(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
