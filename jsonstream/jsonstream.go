// Package jsonstream pulls a single value out of a JSON document without decoding all of it.
package jsonstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type (
	// Path is a jq-style object path such as ".dist-tags.latest". Keys may be empty or contain spaces.
	Path []string
)

var (
	ErrInvalidPath = errors.New("invalid JSON path")
	ErrNotFound    = errors.New("JSON path not found")
)

// Non-nil returned error wraps [ErrInvalidPath].
func ParsePath(s string) (Path, error) {
	if !strings.HasPrefix(s, ".") {
		return nil, fmt.Errorf(`%w: %q must start with the dot character "."`, ErrInvalidPath, s)
	}

	if strings.HasSuffix(s, ".") {
		return nil, fmt.Errorf(`%w: %q must not end with the dot character "."`, ErrInvalidPath, s)
	}

	return strings.Split(s, ".")[1:], nil
}

func (p Path) String() string {
	var b strings.Builder

	for _, key := range p {
		b.WriteRune('.')

		if key == "" || strings.Contains(key, " ") {
			b.WriteString(`"` + key + `"`)
		} else {
			b.WriteString(key)
		}
	}

	return b.String()
}

func isDelim(t json.Token, want ...json.Delim) bool {
	d, ok := t.(json.Delim)
	if !ok {
		return false
	}

	for _, w := range want {
		if d == w {
			return true
		}
	}

	return false
}

// skip consumes the value whose first token is t.
func skip(dec *json.Decoder, t json.Token) error {
	depth := 0

	for {
		switch {
		case isDelim(t, '{', '['):
			depth += 1
		case isDelim(t, '}', ']'):
			depth -= 1
		}

		if depth == 0 {
			return nil
		}

		var err error

		if t, err = dec.Token(); err != nil {
			return err
		}
	}
}

// Find stops reading r as soon as the value at path has been decoded.
// Non-nil returned error wraps [ErrNotFound] when the path does not lead to a scalar.
func Find(ctx context.Context, r io.Reader, path Path) (json.Token, error) {
	dec := json.NewDecoder(r)

	for depth, key := range path {
		at := path[:depth]

		t, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read the value at %q: %w", at.String(), err)
		}

		if !isDelim(t, '{') {
			return nil, fmt.Errorf("%w: the value at %q is not a JSON object", ErrNotFound, at.String())
		}

		for {
			if err = context.Cause(ctx); err != nil {
				return nil, fmt.Errorf("gave up looking for %q: %w", path.String(), err)
			}

			if !dec.More() {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, path[:depth+1].String())
			}

			if t, err = dec.Token(); err != nil {
				return nil, fmt.Errorf("failed to read a key under %q: %w", at.String(), err)
			}

			if t == key {
				break
			}

			if t, err = dec.Token(); err != nil {
				return nil, fmt.Errorf("failed to read a value under %q: %w", at.String(), err)
			}

			if err = skip(dec, t); err != nil {
				return nil, fmt.Errorf("failed to skip a value under %q: %w", at.String(), err)
			}
		}
	}

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read the value at %q: %w", path.String(), err)
	}

	if _, ok := t.(json.Delim); ok {
		return nil, fmt.Errorf("%w: the value at %q is not a scalar", ErrNotFound, path.String())
	}

	return t, nil
}

// String is [Find] for values that must be JSON strings.
func String(ctx context.Context, r io.Reader, path string) (string, error) {
	p, err := ParsePath(path)
	if err != nil {
		return "", err
	}

	t, err := Find(ctx, r, p)
	if err != nil {
		return "", err
	}

	s, ok := t.(string)
	if !ok {
		return "", fmt.Errorf("the value at %q is not a string", p.String())
	}

	return s, nil
}
