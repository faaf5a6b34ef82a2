package pacttype

import "fmt"

// maxListDepth bounds recursive List nesting. The surface language only
// ever emits lists of primitives, so anything deeper than this is either
// malformed or hand-crafted bytecode trying to exhaust the decoder's
// (bounded, no-heap-growth) call stack.
const maxListDepth = 4

// Decode reads one PactType from the front of buf, per the wire format:
// type_tag (1 byte), length (1 byte), payload (length bytes). It returns
// the decoded value and the number of bytes consumed.
func Decode(buf []byte) (PactType, int, error) {
	return decode(buf, 0)
}

func decode(buf []byte, depth int) (PactType, int, error) {
	if len(buf) < 2 {
		return PactType{}, 0, fmt.Errorf("pacttype: decode header: %w", ErrTruncated)
	}
	tag := Tag(buf[0])
	length := int(buf[1])
	if len(buf) < 2+length {
		return PactType{}, 0, fmt.Errorf("pacttype: decode payload: %w", ErrTruncated)
	}
	payload := buf[2 : 2+length]

	switch tag {
	case TagStringLike, TagNumeric:
		cp := make([]byte, length)
		copy(cp, payload)
		return PactType{Tag: tag, Bytes: cp}, 2 + length, nil

	case TagList:
		if depth >= maxListDepth {
			return PactType{}, 0, fmt.Errorf("pacttype: decode list at depth %d: %w", depth, ErrListTooDeep)
		}
		items := make([]PactType, 0)
		var innerTag Tag
		haveInner := false
		consumed := 0
		for consumed < length {
			item, n, err := decode(payload[consumed:], depth+1)
			if err != nil {
				return PactType{}, 0, err
			}
			if !haveInner {
				innerTag = item.Tag
				haveInner = true
			} else if item.Tag != innerTag {
				return PactType{}, 0, fmt.Errorf("pacttype: decode list: %w", ErrListInnerMismatch)
			}
			items = append(items, item)
			consumed += n
		}
		return PactType{Tag: TagList, Items: items}, 2 + length, nil

	default:
		return PactType{}, 0, fmt.Errorf("pacttype: tag=%d: %w", byte(tag), ErrUnknownTypeTag)
	}
}
