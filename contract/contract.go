// Package contract implements the Pact contract binary format (v0):
// a version byte, a length-prefixed data table, and a trailing bytecode
// stream consumed byte-for-byte by the interpreter.
package contract

import (
	"errors"
	"fmt"

	"go.dedis.ch/pact/logging"
	"go.dedis.ch/pact/pacttype"
)

// Version0 is the only binary format version this decoder accepts.
const Version0 byte = 0

// ErrUnsupportedVersion is returned when the leading version byte is
// not Version0.
var ErrUnsupportedVersion = errors.New("contract: unsupported version")

// Contract is a decoded Pact contract: its static data table and the
// bytecode that references it.
type Contract struct {
	Version   byte
	DataTable []pacttype.PactType
	Bytecode  []byte
}

// Decode parses buf as a v0 contract: version byte, 1-byte data table
// length, that many PactTypes, then the remaining bytes as bytecode.
func Decode(buf []byte) (*Contract, error) {
	log := logging.RootLogger.With().Str("component", "contract").Logger()

	if len(buf) < 2 {
		return nil, fmt.Errorf("contract: decode header: %w", pacttype.ErrTruncated)
	}
	version := buf[0]
	if version != Version0 {
		return nil, fmt.Errorf("contract: version=%d: %w", version, ErrUnsupportedVersion)
	}

	tableLen := int(buf[1])
	offset := 2
	table := make([]pacttype.PactType, 0, tableLen)
	for i := 0; i < tableLen; i++ {
		v, n, err := pacttype.Decode(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("contract: data table entry %d: %w", i, err)
		}
		table = append(table, v)
		offset += n
	}

	bytecode := append([]byte(nil), buf[offset:]...)
	log.Trace().Int("data_table_len", tableLen).Int("bytecode_len", len(bytecode)).Msg("decoded contract")

	return &Contract{
		Version:   version,
		DataTable: table,
		Bytecode:  bytecode,
	}, nil
}

// Encode is the inverse of Decode: encode(decode(x)) == x byte-for-byte
// for all well-formed x. Production hosts only decode; encode exists so
// the round-trip invariant is testable and so a future compiler in this
// module's idiom has something to call.
func Encode(c *Contract) []byte {
	buf := []byte{c.Version, byte(len(c.DataTable))}
	for _, v := range c.DataTable {
		buf = pacttype.AppendEncode(buf, v)
	}
	buf = append(buf, c.Bytecode...)
	return buf
}
