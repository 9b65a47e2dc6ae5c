package doctree

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrNulByte is returned when a tag, attribute name or attribute
	// value contains an embedded NUL. The wire format NUL-terminates
	// names, so such input can never be encoded faithfully.
	ErrNulByte = errors.New("embedded NUL byte")

	// ErrIntRange is returned when a value does not fit the 32-bit
	// budget of the compressed integer encoding.
	ErrIntRange = errors.New("integer out of 32-bit range")
)

// stringVarTag is JUCE's var type identifier for a string value.
const stringVarTag = 0x05

// AppendCompressedInt appends v to dst in JUCE's OutputStream compressed
// integer encoding: one length byte whose low seven bits count the
// magnitude bytes that follow (high bit set for negative values), then
// the magnitude in little-endian order using the fewest bytes that hold
// it. Zero encodes as a single zero byte. Values outside the signed
// 32-bit range are rejected.
func AppendCompressedInt(dst []byte, v int64) ([]byte, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return dst, fmt.Errorf("%w: %d", ErrIntRange, v)
	}

	mag := uint32(v)
	if v < 0 {
		mag = uint32(-v)
	}

	var data [4]byte
	num := 0
	for mag > 0 {
		data[num] = byte(mag)
		mag >>= 8
		num++
	}

	length := byte(num)
	if v < 0 {
		length |= 0x80
	}
	dst = append(dst, length)
	return append(dst, data[:num]...), nil
}

// ReadCompressedInt decodes a compressed integer from the front of data,
// returning the value and the number of bytes consumed. It is the exact
// inverse of AppendCompressedInt; the encode path never needs it, but
// round-trip tests do.
func ReadCompressedInt(data []byte) (int64, int, error) {
	if len(data) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}

	head := data[0]
	num := int(head & 0x7f)
	if num > 4 {
		return 0, 0, fmt.Errorf("%w: %d magnitude bytes", ErrIntRange, num)
	}
	if len(data) < 1+num {
		return 0, 0, io.ErrUnexpectedEOF
	}

	var mag uint64
	for i := 0; i < num; i++ {
		mag |= uint64(data[1+i]) << (8 * i)
	}

	v := int64(mag)
	if head&0x80 != 0 {
		v = -v
	}
	return v, 1 + num, nil
}

// EncodeTree serializes the tree rooted at node into JUCE's ValueTree
// binary format. Only string properties are supported, which is all the
// documentation tree ever holds. Construction must be finished before
// encoding begins; the tree is not mutated.
func EncodeTree(node *Node) ([]byte, error) {
	return appendNode(nil, node)
}

// appendNode writes one node: NUL-terminated tag, compressed attribute
// count, each attribute in insertion order, compressed child count, then
// each child recursively.
func appendNode(dst []byte, n *Node) ([]byte, error) {
	dst, err := appendName(dst, n.Tag)
	if err != nil {
		return dst, fmt.Errorf("node %q: %w", n.Tag, err)
	}

	dst, err = AppendCompressedInt(dst, int64(len(n.Attrs)))
	if err != nil {
		return dst, err
	}

	for _, attr := range n.Attrs {
		dst, err = appendName(dst, strings.TrimSpace(attr.Name))
		if err != nil {
			return dst, fmt.Errorf("attribute %q of node %q: %w", attr.Name, n.Tag, err)
		}

		value := strings.TrimSpace(attr.Value)
		if strings.IndexByte(value, 0) >= 0 {
			return dst, fmt.Errorf("attribute %q of node %q: %w", attr.Name, n.Tag, ErrNulByte)
		}

		// Length covers the NUL-terminated value plus the var type
		// byte; the downstream reader depends on this exact count.
		dst, err = AppendCompressedInt(dst, int64(len(value))+2)
		if err != nil {
			return dst, err
		}
		dst = append(dst, stringVarTag)
		dst = append(dst, value...)
		dst = append(dst, 0)
	}

	dst, err = AppendCompressedInt(dst, int64(len(n.Children)))
	if err != nil {
		return dst, err
	}
	for _, child := range n.Children {
		dst, err = appendNode(dst, child)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

func appendName(dst []byte, s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return dst, ErrNulByte
	}
	dst = append(dst, s...)
	return append(dst, 0), nil
}
