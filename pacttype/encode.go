package pacttype

// Encode returns the wire encoding of v. It is the inverse of Decode and
// exists mainly so encode(decode(x)) == x and decode(encode(x)) == x can
// be tested; production hosts only need Decode, since the bytecode
// compiler that emits these bytes lives outside this module.
func Encode(v PactType) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the wire encoding of v to buf and returns the
// extended slice, avoiding an extra allocation when building up a
// DataTable or List payload incrementally.
func AppendEncode(buf []byte, v PactType) []byte {
	switch v.Tag {
	case TagStringLike, TagNumeric:
		buf = append(buf, byte(v.Tag), byte(len(v.Bytes)))
		buf = append(buf, v.Bytes...)
		return buf

	case TagList:
		var inner []byte
		for _, item := range v.Items {
			inner = AppendEncode(inner, item)
		}
		buf = append(buf, byte(TagList), byte(len(inner)))
		buf = append(buf, inner...)
		return buf

	default:
		return buf
	}
}
