// util/json.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

///////////////////////////////////////////////////////////////////////////
// JSON

// DuplicateJSONKey represents a key that appears more than once in the
// same JSON object.
type DuplicateJSONKey struct {
	Path string // dotted path to the enclosing object, e.g. "performance"
	Key  string
}

func (d DuplicateJSONKey) String() string {
	if d.Path == "" {
		return d.Key
	}
	return d.Path + "." + d.Key
}

// FindDuplicateJSONKeys walks the token stream of data and returns all of
// the duplicated object keys.  encoding/json silently keeps the last one,
// which makes for confusing configuration files.
func FindDuplicateJSONKeys(data []byte) []DuplicateJSONKey {
	dec := json.NewDecoder(bytes.NewReader(data))

	type level struct {
		object    bool
		seen      map[string]bool
		expectKey bool
	}
	var stack []level
	var path []string
	var dups []DuplicateJSONKey

	// valueDone is called after a complete value has been consumed.
	valueDone := func() {
		if len(stack) > 0 && stack[len(stack)-1].object {
			stack[len(stack)-1].expectKey = true
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				stack = append(stack, level{
					object:    v == '{',
					seen:      make(map[string]bool),
					expectKey: v == '{',
				})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}

		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				top := &stack[n-1]
				if top.seen[v] {
					dups = append(dups, DuplicateJSONKey{Path: strings.Join(path, "."), Key: v})
				}
				top.seen[v] = true
				top.expectKey = false
				path = append(path, v)
			} else {
				valueDone()
			}

		default:
			valueDone()
		}
	}

	return dups
}

func UnmarshalJSON[T any](r io.Reader, out *T) error {
	// We need the contents as an array of bytes so that we can issue
	// reasonable errors.
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// UnmarshalJSONBytes unmarshals the bytes into the given type; syntax and
// type errors are reported with line and character positions and
// duplicated keys are reported as errors as well.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	if err := json.Unmarshal(b, out); err != nil {
		return decorateJSONError(b, err)
	}

	var errs []error
	for _, d := range FindDuplicateJSONKeys(b) {
		errs = append(errs, fmt.Errorf("%s: key repeated", d))
	}
	return errors.Join(errs...)
}

func decorateJSONError(b []byte, err error) error {
	decodeOffset := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	var serr *json.SyntaxError
	var terr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &serr):
		line, char := decodeOffset(serr.Offset)
		return fmt.Errorf("line %d, character %d: %w", line, char, err)
	case errors.As(err, &terr):
		line, char := decodeOffset(terr.Offset)
		return fmt.Errorf("line %d, character %d: %s value invalid for %s (%s): %w",
			line, char, terr.Value, terr.Field, terr.Type, err)
	default:
		return err
	}
}
