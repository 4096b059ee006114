package conversion

import "fmt"

// DuplicateValueError reports a flattened key whose path collides with a
// value stored by an earlier entry. It occurs when the same key appears
// twice, or when one key is a strict prefix of another ("a.b" vs "a.b.c").
type DuplicateValueError struct {
	// Key is the flattened key being inserted when the collision was found.
	Key string

	// Token is the path token that already held a value.
	Token string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("while handling key '%s', found a token '%s' that has at least 2 values", e.Key, e.Token)
}

// KeyError reports a mapping key that cannot contribute a path token:
// null keys and composite (mapping or sequence) keys.
type KeyError struct {
	// Kind names the offending key ("null", "mapping", "sequence").
	Kind string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("mapping key must be a literal scalar, found %s", e.Kind)
}

// DocumentError reports a flattened document whose root is not a mapping.
type DocumentError struct {
	// Kind names the actual root node kind.
	Kind string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("flattened document must be a mapping, found %s", e.Kind)
}
