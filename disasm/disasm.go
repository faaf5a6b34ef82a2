// Package disasm renders a Pact contract's decoded data table and
// bytecode as a human-readable tree, for debugging contracts and
// triaging interpreter errors.
package disasm

import (
	"fmt"

	"github.com/disiqueira/gotree"
	"go.dedis.ch/pact/contract"
	"go.dedis.ch/pact/pacttype"
)

// Display walks c's data table and bytecode stream and returns a tree
// representation suitable for printing to a terminal. It never errors
// on well-formed input; malformed bytecode is shown up to the point of
// failure with a trailing leaf that names the invalid opcode or the
// missing index byte.
func Display(c *contract.Contract) string {
	root := gotree.New(fmt.Sprintf("Contract (version=%d)", c.Version))

	dataNode := root.Add("DataTable")
	for i, v := range c.DataTable {
		dataNode.Add(fmt.Sprintf("[%d] %s", i, describeValue(v)))
	}

	bcNode := root.Add("Bytecode")
	walkBytecode(bcNode, c.Bytecode)

	return root.Print()
}

func describeValue(v pacttype.PactType) string {
	switch v.Tag {
	case pacttype.TagStringLike:
		return fmt.Sprintf("StringLike(%q)", string(v.Bytes))
	case pacttype.TagNumeric:
		return fmt.Sprintf("Numeric(% x)", v.Bytes)
	case pacttype.TagList:
		items := make([]string, len(v.Items))
		for i, item := range v.Items {
			items[i] = describeValue(item)
		}
		return fmt.Sprintf("List%v", items)
	default:
		return fmt.Sprintf("Unknown(tag=%d)", v.Tag)
	}
}

// walkBytecode decodes op-by-op the same way the interpreter does, but
// only for display: it does not evaluate comparators against any
// table, it merely names which opcode and indices occur at each step.
func walkBytecode(node gotree.Tree, bytecode []byte) {
	i := 0
	for i < len(bytecode) {
		b := bytecode[i]
		i++

		if b&0x03 != 0 {
			node.Add(fmt.Sprintf("offset %d: invalid opcode 0x%02x (reserved bits set)", i-1, b))
			return
		}

		not := b&0x40 != 0
		opBits := (b & 0x3C) >> 2

		if b&0x80 == 0 {
			load := "INPUT vs USER"
			if b&0x20 != 0 {
				load = "INPUT vs INPUT"
			}
			name, ok := comparatorName(opBits & 0x07)
			if !ok {
				node.Add(fmt.Sprintf("offset %d: invalid comparator opcode 0x%02x", i-1, b))
				return
			}
			if i >= len(bytecode) {
				node.Add(fmt.Sprintf("offset %d: %s%s, %s — truncated, missing index byte", i-1, notPrefix(not), name, load))
				return
			}
			idx := bytecode[i]
			i++
			lhs := idx >> 4
			rhs := idx & 0x0f
			node.Add(fmt.Sprintf("offset %d: %s%s, %s, LHS=%d RHS=%d", i-2, notPrefix(not), name, load, lhs, rhs))
			continue
		}

		name, ok := conjunctionName(opBits)
		if !ok {
			node.Add(fmt.Sprintf("offset %d: invalid conjunction opcode 0x%02x", i-1, b))
			return
		}
		node.Add(fmt.Sprintf("offset %d: CONJ %s%s", i-1, notPrefix(not), name))
	}
}

func notPrefix(not bool) string {
	if not {
		return "NOT "
	}
	return ""
}

func comparatorName(op byte) (string, bool) {
	switch op {
	case 0:
		return "EQ", true
	case 1:
		return "GT", true
	case 2:
		return "GTE", true
	case 3:
		return "IN", true
	default:
		return "", false
	}
}

func conjunctionName(op byte) (string, bool) {
	switch op {
	case 0:
		return "AND", true
	case 1:
		return "OR", true
	case 2:
		return "XOR", true
	default:
		return "", false
	}
}
