package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrMalformedData is returned when persisted content is not an object
// mapping item names to integer quantities.
var ErrMalformedData = errors.New("malformed inventory data")

// MarshalJSON encodes the stock as a JSON object in insertion order.
func (s *Stock) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.qty[name]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the stock with the entries of a JSON object,
// keeping document key order. Values must be JSON numbers with no fractional
// part, so 100, 1e2 and 100.0 all load as 100. Any other top-level value, or a
// value that is not an integer, yields ErrMalformedData.
func (s *Stock) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: top-level value is not an object", ErrMalformedData)
	}

	loaded := NewStock()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrMalformedData, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		qty, ok := parseInteger(raw)
		if !ok {
			return fmt.Errorf("%w: quantity for %q is not an integer", ErrMalformedData, name)
		}
		loaded.set(name, qty)
	}

	// Closing brace, then nothing else.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after object", ErrMalformedData)
	}

	*s = *loaded
	return nil
}

// parseInteger accepts a JSON number token holding an integral value that
// fits in an int.
func parseInteger(raw json.RawMessage) (int, bool) {
	text := string(bytes.TrimSpace(raw))
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	// Strings, booleans and null start with a quote or letter and are not
	// numbers even if ParseFloat would accept their spelling.
	if text == "" || (text[0] != '-' && (text[0] < '0' || text[0] > '9')) {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
