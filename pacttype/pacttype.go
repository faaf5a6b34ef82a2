// Package pacttype implements PactType, the small tagged union of values
// a Pact contract can compare: opaque byte strings, unsigned numeric
// magnitudes, and homogeneous lists of either.
package pacttype

import "fmt"

// Tag identifies which variant a PactType holds.
type Tag byte

const (
	TagStringLike Tag = 0
	TagNumeric    Tag = 1
	TagList       Tag = 2
)

func (t Tag) String() string {
	switch t {
	case TagStringLike:
		return "StringLike"
	case TagNumeric:
		return "Numeric"
	case TagList:
		return "List"
	default:
		return fmt.Sprintf("Tag(%d)", byte(t))
	}
}

// PactType is a tagged union value. Bytes holds the payload for
// StringLike and Numeric; Items holds the decoded elements for List.
// Exactly one of Bytes/Items is meaningful for a given Tag.
type PactType struct {
	Tag   Tag
	Bytes []byte
	Items []PactType
}

// StringLike builds an opaque byte-sequence value.
func StringLike(b []byte) PactType {
	return PactType{Tag: TagStringLike, Bytes: b}
}

// Numeric builds a value from its little-endian unsigned magnitude bytes.
func Numeric(b []byte) PactType {
	return PactType{Tag: TagNumeric, Bytes: b}
}

// List builds a list value. Items must share the same Tag; List does not
// itself enforce this — decode does, since a compiler constructing a
// List by hand is trusted to respect the invariant it will later encode.
func List(items []PactType) PactType {
	return PactType{Tag: TagList, Items: items}
}

// Equal reports whether two PactTypes have the same variant and payload.
// Used by tests and round-trip checks; comparison semantics
// for contract evaluation live in Compare, not here.
func (v PactType) Equal(other PactType) bool {
	if v.Tag != other.Tag {
		return false
	}
	switch v.Tag {
	case TagList:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	default:
		return bytesEqual(v.Bytes, other.Bytes)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
