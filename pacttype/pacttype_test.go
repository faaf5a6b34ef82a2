package pacttype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DecodeStringLike(t *testing.T) {
	buf := append([]byte{byte(TagStringLike), 11}, []byte("hello world")...)
	v, n, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 13, n)
	require.Equal(t, StringLike([]byte("hello world")), v)
}

func Test_DecodeNumeric(t *testing.T) {
	buf := []byte{byte(TagNumeric), 2, 0x39, 0x30}
	v, n, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, Numeric([]byte{0x39, 0x30}), v)
}

func Test_DecodeList(t *testing.T) {
	item0 := []byte{byte(TagNumeric), 2, 0x01, 0x3e} // 15873 LE
	item1 := []byte{byte(TagNumeric), 2, 0x0a, 0x3e} // 15882 LE
	payload := append(append([]byte{}, item0...), item1...)
	buf := append([]byte{byte(TagList), byte(len(payload))}, payload...)

	v, n, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, TagList, v.Tag)
	require.Len(t, v.Items, 2)
	require.Equal(t, Numeric([]byte{0x01, 0x3e}), v.Items[0])
	require.Equal(t, Numeric([]byte{0x0a, 0x3e}), v.Items[1])
}

func Test_DecodeList_MixedVariantsIsError(t *testing.T) {
	str := []byte{byte(TagStringLike), 1, 'a'}
	num := []byte{byte(TagNumeric), 1, 0x01}
	payload := append(append([]byte{}, str...), num...)
	buf := append([]byte{byte(TagList), byte(len(payload))}, payload...)

	_, _, err := Decode(buf)
	require.True(t, errors.Is(err, ErrListInnerMismatch))
}

func Test_DecodeList_TooDeepIsError(t *testing.T) {
	inner := []byte{byte(TagStringLike), 1, 'x'}
	for depth := 0; depth <= maxListDepth; depth++ {
		inner = append([]byte{byte(TagList), byte(len(inner))}, inner...)
	}
	_, _, err := Decode(inner)
	require.True(t, errors.Is(err, ErrListTooDeep))
}

func Test_Decode_Truncated(t *testing.T) {
	_, _, err := Decode([]byte{byte(TagStringLike)})
	require.True(t, errors.Is(err, ErrTruncated))

	_, _, err = Decode([]byte{byte(TagStringLike), 5, 'a', 'b'})
	require.True(t, errors.Is(err, ErrTruncated))
}

func Test_Decode_UnknownTypeTag(t *testing.T) {
	_, _, err := Decode([]byte{9, 0})
	require.True(t, errors.Is(err, ErrUnknownTypeTag))
}

func Test_EncodeDecodeRoundTrip(t *testing.T) {
	values := []PactType{
		StringLike([]byte("alice")),
		Numeric([]byte{0x01, 0x3e}),
		List([]PactType{Numeric([]byte{1}), Numeric([]byte{2, 0})}),
		List(nil),
	}
	for _, v := range values {
		buf := Encode(v)
		decoded, n, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.True(t, v.Equal(decoded))

		reencoded := Encode(decoded)
		require.Equal(t, buf, reencoded)
	}
}

func Test_CompareEQ(t *testing.T) {
	ok, err := Compare(OpEQ, Numeric([]byte{0x01, 0x3e}), Numeric([]byte{0x01, 0x3e, 0x00}))
	require.NoError(t, err)
	require.True(t, ok, "zero-extended magnitudes of unequal length compare equal")

	ok, err = Compare(OpEQ, StringLike([]byte("alice")), StringLike([]byte("alice")))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Compare(OpEQ, StringLike([]byte("alice")), StringLike([]byte("bob")))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = Compare(OpEQ, Numeric([]byte{1}), StringLike([]byte{1}))
	require.True(t, errors.Is(err, ErrTypeMismatch))
}

func Test_CompareGT_GTE(t *testing.T) {
	lo := Numeric([]byte{50})
	hi := Numeric([]byte{100})

	ok, err := Compare(OpGT, hi, lo)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Compare(OpGT, lo, hi)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = Compare(OpGTE, lo, lo)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = Compare(OpGT, StringLike([]byte("a")), StringLike([]byte("b")))
	require.True(t, errors.Is(err, ErrUnsupportedOperator))
}

func Test_CompareIN(t *testing.T) {
	list := List([]PactType{Numeric([]byte{16, 62}), Numeric([]byte{10, 62})})

	ok, err := Compare(OpIN, Numeric([]byte{10, 62}), list)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Compare(OpIN, Numeric([]byte{99, 99}), list)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = Compare(OpIN, Numeric([]byte{1}), List(nil))
	require.NoError(t, err, "empty list membership is never a type error")
	require.False(t, ok)

	_, err = Compare(OpIN, StringLike([]byte("x")), list)
	require.True(t, errors.Is(err, ErrTypeMismatch))
}
