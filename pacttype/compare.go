package pacttype

import "fmt"

// Operator is a comparator opcode's operation, independent of how the
// bytecode happens to encode it.
type Operator byte

const (
	OpEQ  Operator = 0
	OpGT  Operator = 1
	OpGTE Operator = 2
	OpIN  Operator = 3
)

func (op Operator) String() string {
	switch op {
	case OpEQ:
		return "EQ"
	case OpGT:
		return "GT"
	case OpGTE:
		return "GTE"
	case OpIN:
		return "IN"
	default:
		return fmt.Sprintf("Operator(%d)", byte(op))
	}
}

// Compare applies op to lhs and rhs per the operator-applicability
// matrix: EQ works on like-typed StringLike or Numeric pairs; GT/GTE
// work only on Numeric pairs; IN tests lhs for membership in a List
// whose inner variant matches lhs. Any other combination is an error.
func Compare(op Operator, lhs, rhs PactType) (bool, error) {
	switch op {
	case OpEQ:
		return compareEQ(lhs, rhs)
	case OpGT:
		return compareOrdered(lhs, rhs, func(c int) bool { return c > 0 })
	case OpGTE:
		return compareOrdered(lhs, rhs, func(c int) bool { return c >= 0 })
	case OpIN:
		return compareIN(lhs, rhs)
	default:
		return false, fmt.Errorf("pacttype: compare op=%d: %w", byte(op), ErrUnsupportedOperator)
	}
}

func compareEQ(lhs, rhs PactType) (bool, error) {
	switch {
	case lhs.Tag == TagStringLike && rhs.Tag == TagStringLike:
		return bytesEqual(lhs.Bytes, rhs.Bytes), nil
	case lhs.Tag == TagNumeric && rhs.Tag == TagNumeric:
		return compareMagnitude(lhs.Bytes, rhs.Bytes) == 0, nil
	case lhs.Tag != rhs.Tag:
		return false, fmt.Errorf("pacttype: EQ %s vs %s: %w", lhs.Tag, rhs.Tag, ErrTypeMismatch)
	default:
		return false, fmt.Errorf("pacttype: EQ unsupported on %s: %w", lhs.Tag, ErrUnsupportedOperator)
	}
}

func compareOrdered(lhs, rhs PactType, accept func(int) bool) (bool, error) {
	if lhs.Tag != TagNumeric || rhs.Tag != TagNumeric {
		if lhs.Tag != rhs.Tag {
			return false, fmt.Errorf("pacttype: ordered compare %s vs %s: %w", lhs.Tag, rhs.Tag, ErrTypeMismatch)
		}
		return false, fmt.Errorf("pacttype: ordered compare unsupported on %s: %w", lhs.Tag, ErrUnsupportedOperator)
	}
	return accept(compareMagnitude(lhs.Bytes, rhs.Bytes)), nil
}

// compareIN succeeds iff lhs is byte-identical to some element of rhs,
// a List. An empty list always yields false, never a type error — there
// is no element to disagree with lhs's variant, so there is nothing to
// mismatch.
func compareIN(lhs, rhs PactType) (bool, error) {
	if rhs.Tag != TagList {
		return false, fmt.Errorf("pacttype: IN requires a list rhs, got %s: %w", rhs.Tag, ErrUnsupportedOperator)
	}
	if lhs.Tag == TagList {
		return false, fmt.Errorf("pacttype: IN unsupported with list lhs: %w", ErrUnsupportedOperator)
	}
	if len(rhs.Items) == 0 {
		return false, nil
	}
	if lhs.Tag != rhs.Items[0].Tag {
		return false, fmt.Errorf("pacttype: IN %s not in list of %s: %w", lhs.Tag, rhs.Items[0].Tag, ErrTypeMismatch)
	}
	for _, item := range rhs.Items {
		if bytesEqual(lhs.Bytes, item.Bytes) {
			return true, nil
		}
	}
	return false, nil
}

// compareMagnitude treats a and b as little-endian unsigned magnitudes,
// zero-extending the shorter on its high (tail) end, and returns -1, 0,
// or 1 as a is less than, equal to, or greater than b.
func compareMagnitude(a, b []byte) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
