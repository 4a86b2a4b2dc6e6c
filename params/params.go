// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateKey indicates two nested paths flatten to the same key.
	ErrDuplicateKey = errors.New("params: duplicate key created during flattening")

	// ErrEmptySeparator indicates an empty key separator.
	ErrEmptySeparator = errors.New("params: empty key separator")
)

// DefaultSeparator joins nested keys.
const DefaultSeparator = "_"

// Flatten returns a single-level copy of tree. Nested map[string]any values
// are descended into and their keys joined with sep; every other value is a
// leaf kept as-is. Empty nested maps contribute nothing. Keys are visited in
// sorted order, so the reported duplicate is deterministic.
//
// Errors:
//   - ErrEmptySeparator, ErrDuplicateKey.
func Flatten(tree map[string]any, sep string) (map[string]any, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}
	out := make(map[string]any)
	if err := flatten(out, tree, "", sep); err != nil {
		return nil, err
	}

	return out, nil
}

// flatten is the recursive helper accumulating into out.
func flatten(out map[string]any, node map[string]any, prefix, sep string) error {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := prefix + k
		if child, ok := node[k].(map[string]any); ok {
			if err := flatten(out, child, name+sep, sep); err != nil {
				return err
			}
			continue
		}
		if _, dup := out[name]; dup {
			return fmt.Errorf("%q: %w", name, ErrDuplicateKey)
		}
		out[name] = node[k]
	}

	return nil
}

// Stringify renders every flat value with fmt.Sprint; tracked parameters
// are compared as strings.
func Stringify(flat map[string]any) map[string]string {
	out := make(map[string]string, len(flat))
	for k, v := range flat {
		out[k] = fmt.Sprint(v)
	}

	return out
}
