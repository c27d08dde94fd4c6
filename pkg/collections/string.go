package collections

import "tinyclj/pkg/value"

// NewString builds a heap STRING value from a Go string. tiny-clj strings
// are immutable UTF-8 byte buffers; there is no COW path for them since
// nothing ever mutates a STRING in place (only byte arrays do, via
// aset!).
func NewString(s string) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindString, Bytes: []byte(s)})}
}

func StringValue(v value.Value) string {
	if !v.IsString() {
		return ""
	}
	return string(v.Obj.Bytes)
}

// NewByteArray builds a heap BYTE_ARRAY value owning a private copy of b.
func NewByteArray(b []byte) value.Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindByteArray, Bytes: cp})}
}

// ByteArrayGet/Set index a mutable byte array in place (byte arrays are
// the one mutable-by-design collection kind; no COW, matching a raw
// buffer's semantics on a resource-constrained host).
func ByteArrayGet(v value.Value, idx int) (value.Value, bool) {
	if idx < 0 || idx >= len(v.Obj.Bytes) {
		return value.Nil, false
	}
	return value.Int(int64(v.Obj.Bytes[idx])), true
}

func ByteArraySet(v value.Value, idx int, b byte) bool {
	if idx < 0 || idx >= len(v.Obj.Bytes) {
		return false
	}
	v.Obj.Bytes[idx] = b
	return true
}

// ByteArrayLength reports a byte array's fixed length.
func ByteArrayLength(v value.Value) int { return len(v.Obj.Bytes) }

// ByteArraySlice returns a fresh copy of v[start:end), per §3.3's "slice
// (producing a fresh copy)" contract: the result shares nothing with v,
// so mutating one never affects the other.
func ByteArraySlice(v value.Value, start, end int) (value.Value, bool) {
	if start < 0 || end > len(v.Obj.Bytes) || start > end {
		return value.Nil, false
	}
	return NewByteArray(v.Obj.Bytes[start:end]), true
}

// ByteArrayCopy bulk-copies src[srcStart:srcStart+n) into dst starting at
// dstStart, bounds-checking both ends before touching either buffer.
func ByteArrayCopy(dst value.Value, dstStart int, src value.Value, srcStart, n int) bool {
	if n < 0 || dstStart < 0 || srcStart < 0 {
		return false
	}
	if dstStart+n > len(dst.Obj.Bytes) || srcStart+n > len(src.Obj.Bytes) {
		return false
	}
	copy(dst.Obj.Bytes[dstStart:dstStart+n], src.Obj.Bytes[srcStart:srcStart+n])
	return true
}
