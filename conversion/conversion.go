// Package conversion converts YAML documents between nested and flattened
// forms.
//
// Elasticsearch-style configuration files freely mix both shapes:
//
//	cluster:
//	  routing:
//	    allocation:
//	      enable: all
//
// and the flattened equivalent:
//
//	cluster.routing.allocation.enable: all
//
// [Flatten] produces the flattened form as a path-to-value map, and
// [Unflatten] rebuilds a nested document from flattened key/value pairs.
// Both operate on [yaml.Node] trees so scalar tags, quoting styles, and
// sequence values survive the round trip untouched.
//
// Sequences are never flattened; a sequence value is carried opaquely under
// its path. Mapping keys must be literal scalars (strings, booleans, or
// numbers) and contribute their literal text to the path, so `true: {1: x}`
// flattens to `true.1: x`.
package conversion

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSeparator joins path tokens in flattened keys.
const DefaultSeparator = "."

// Entry is a single flattened key/value pair.
type Entry struct {
	// Key is the separator-joined path (e.g. "cluster.routing.allocation.enable").
	Key string

	// Value is the YAML value stored at that path.
	Value *yaml.Node
}

// Flat maps separator-joined paths to their YAML values.
//
// Build one with [Flatten] or [Converter.Flatten]. Iteration helpers return
// keys in sorted order so output is deterministic regardless of input order.
type Flat map[string]*yaml.Node

// Keys returns all flattened paths in sorted order.
func (f Flat) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns all key/value pairs ordered by sorted key.
func (f Flat) Entries() []Entry {
	entries := make([]Entry, 0, len(f))
	for _, key := range f.Keys() {
		entries = append(entries, Entry{Key: key, Value: f[key]})
	}
	return entries
}

// Node builds a single-level mapping node with sorted, string-tagged keys.
// The result can be passed directly to yaml.Marshal or a yaml.Encoder.
func (f Flat) Node() *yaml.Node {
	mapping := newMapping()
	for _, key := range f.Keys() {
		insertPair(mapping, key, f[key])
	}
	return mapping
}

// Converter performs nested/flattened conversions with a configurable
// path separator. The zero value is not usable; construct with
// [NewConverter] or set Separator explicitly.
type Converter struct {
	// Separator joins and splits path tokens. Defaults to ".".
	Separator string
}

// NewConverter returns a Converter using [DefaultSeparator].
func NewConverter() *Converter {
	return &Converter{Separator: DefaultSeparator}
}

// Flatten converts a nested YAML document using the default separator.
// See [Converter.Flatten].
func Flatten(root *yaml.Node) (Flat, error) {
	return NewConverter().Flatten(root)
}

// Unflatten rebuilds a nested document using the default separator.
// See [Converter.Unflatten].
func Unflatten(entries []Entry) (*yaml.Node, error) {
	return NewConverter().Unflatten(entries)
}

// Flatten walks the document depth-first and records every scalar and
// sequence value under its separator-joined path.
//
// A scalar or sequence at the document root has no path and is dropped, so
// flattening `just a string` yields an empty map. When the same full path
// occurs more than once the last occurrence wins. Alias nodes are resolved
// by following their anchor target.
//
// Returns a [*KeyError] if a mapping key is null or is itself a mapping or
// sequence.
func (c *Converter) Flatten(root *yaml.Node) (Flat, error) {
	out := Flat{}
	if root == nil {
		return out, nil
	}
	if err := c.flatten(out, nil, root); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Converter) flatten(out Flat, path []string, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := c.flatten(out, path, child); err != nil {
				return err
			}
		}
		return nil

	case yaml.AliasNode:
		return c.flatten(out, path, node.Alias)

	case yaml.ScalarNode, yaml.SequenceNode:
		// Sequences stay opaque: array flattening is not supported.
		if len(path) > 0 {
			out[strings.Join(path, c.Separator)] = node
		}
		return nil

	case yaml.MappingNode:
		if custom(node.Tag) {
			// A custom-tagged mapping is a leaf value, not structure.
			if len(path) > 0 {
				out[strings.Join(path, c.Separator)] = node
			}
			return nil
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := keyString(node.Content[i])
			if err != nil {
				return err
			}
			path = append(path, key)
			if err := c.flatten(out, path, node.Content[i+1]); err != nil {
				return err
			}
			path = path[:len(path)-1]
		}
		return nil
	}

	return nil
}

// Unflatten rebuilds a nested mapping from flattened key/value pairs.
//
// Entries are applied in order: each key is split on the separator and
// intermediate mappings are created as needed. Values are inserted opaquely,
// so sequence and custom-tagged values survive unchanged. The returned node
// is a mapping whose key order follows first appearance in the input.
//
// Returns a [*DuplicateValueError] when a key's final token already holds a
// value, or when an intermediate token holds anything other than a mapping
// (e.g. the pair "a.b" and "a.b.c" conflicts in either order).
func (c *Converter) Unflatten(entries []Entry) (*yaml.Node, error) {
	root := newMapping()
	for _, entry := range entries {
		tokens := strings.Split(entry.Key, c.Separator)
		current := root
		for i, token := range tokens {
			last := i == len(tokens)-1
			existing := lookupValue(current, token)
			switch {
			case existing != nil && last:
				return nil, &DuplicateValueError{Key: entry.Key, Token: token}
			case existing != nil:
				if existing.Kind != yaml.MappingNode {
					return nil, &DuplicateValueError{Key: entry.Key, Token: token}
				}
				current = existing
			case last:
				insertPair(current, token, entry.Value)
			default:
				next := newMapping()
				insertPair(current, token, next)
				current = next
			}
		}
	}
	return root, nil
}

// UnflattenNode rebuilds a nested mapping from an already-parsed flattened
// document, preserving document key order. Document nodes are unwrapped; an
// empty or null document yields an empty mapping.
//
// Returns a [*KeyError] for non-scalar keys and a [*DocumentError] when the
// document root is not a mapping.
func (c *Converter) UnflattenNode(node *yaml.Node) (*yaml.Node, error) {
	mapping := unwrap(node)
	if mapping == nil {
		return newMapping(), nil
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, &DocumentError{Kind: kindName(mapping.Kind)}
	}

	entries := make([]Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, err := keyString(mapping.Content[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: mapping.Content[i+1]})
	}
	return c.Unflatten(entries)
}

// unwrap resolves document and alias wrappers down to the content node.
// Returns nil for empty or null documents.
func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == 0:
			// Zero node, left untouched by parsing empty input.
			return nil
		case node.Kind == yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case node.Kind == yaml.AliasNode:
			node = node.Alias
		case node.Kind == yaml.ScalarNode && node.Tag == nullTag:
			return nil
		default:
			return node
		}
	}
	return nil
}
