package value

// isSequential reports whether v walks element-wise as a list or seq: a
// list, a SEQ view, or nil (the empty list/fully-consumed seq), per
// §4.4.4's "a fully consumed seq equals the empty list".
func isSequential(v Value) bool {
	return v.IsNil() || v.IsList() || (v.Tag == TagHeap && v.Obj != nil && v.Obj.Kind == KindSeq)
}

// seqStep destructures a list-or-seq value into its first element and
// the rest, without depending on package collections (which itself
// depends on package value). ok is false once the sequence is
// exhausted.
func seqStep(v Value) (elem Value, rest Value, ok bool) {
	if v.IsNil() {
		return Nil, Nil, false
	}
	if v.IsList() {
		return v.Obj.Car, v.Obj.Cdr, true
	}
	// KindSeq
	source, idx, kind := v.Obj.SeqSource, v.Obj.SeqIndex, v.Obj.SeqKind
	length := 0
	switch kind {
	case SeqOverVector:
		length = len(source.Obj.Items)
	case SeqOverMapEntries:
		length = len(source.Obj.Pairs)
	case SeqOverString:
		length = len([]rune(string(source.Obj.Bytes)))
	}
	if idx >= length {
		return Nil, Nil, false
	}
	switch kind {
	case SeqOverVector:
		elem = source.Obj.Items[idx]
	case SeqOverMapEntries:
		p := source.Obj.Pairs[idx]
		elem = Value{Tag: TagHeap, Obj: &Heap{Kind: KindVector, Items: []Value{p.Key, p.Val}}}
	case SeqOverString:
		r := []rune(string(source.Obj.Bytes))
		elem = Char(r[idx])
	}
	if idx+1 >= length {
		rest = Nil
	} else {
		rest = Value{Tag: TagHeap, Obj: &Heap{Kind: KindSeq, SeqSource: source, SeqIndex: idx + 1, SeqKind: kind}}
	}
	return elem, rest, true
}

// Equal implements tiny-clj's structural equality: numbers compare by
// value (a fixnum equals a fixed-point only when they encode the same
// real value exactly), collections compare element-wise, symbols compare
// by namespace+name, lists and seqs walk element-wise to the first
// divergence, and everything else falls back to pointer identity.
func Equal(a, b Value) bool {
	if SameObject(a, b) {
		return true
	}
	if isSequential(a) && isSequential(b) {
		for {
			ea, ra, oka := seqStep(a)
			eb, rb, okb := seqStep(b)
			if !oka || !okb {
				return oka == okb
			}
			if !Equal(ea, eb) {
				return false
			}
			a, b = ra, rb
		}
	}
	if (a.Tag == TagFixnum || a.Tag == TagFixed) && (b.Tag == TagFixnum || b.Tag == TagFixed) {
		if a.Tag == b.Tag {
			return a.I == b.I
		}
		fix, flt := a, b
		if fix.Tag == TagFixed {
			fix, flt = b, a
		}
		return fix.I*int64(FixedScale) == flt.I
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagFixnum, TagChar, TagFixed, TagSpecial:
		return a.I == b.I
	}
	if a.Obj == nil || b.Obj == nil {
		return a.Obj == b.Obj
	}
	if a.Obj.Kind != b.Obj.Kind {
		return false
	}
	switch a.Obj.Kind {
	case KindString, KindByteArray:
		return string(a.Obj.Bytes) == string(b.Obj.Bytes)
	case KindSymbol:
		return a.Obj.NS == b.Obj.NS && a.Obj.Name == b.Obj.Name
	case KindVector, KindTransientVector:
		if len(a.Obj.Items) != len(b.Obj.Items) {
			return false
		}
		for i := range a.Obj.Items {
			if !Equal(a.Obj.Items[i], b.Obj.Items[i]) {
				return false
			}
		}
		return true
	case KindMap, KindTransientMap:
		if len(a.Obj.Pairs) != len(b.Obj.Pairs) {
			return false
		}
		for _, pa := range a.Obj.Pairs {
			found := false
			for _, pb := range b.Obj.Pairs {
				if Equal(pa.Key, pb.Key) {
					found = Equal(pa.Val, pb.Val)
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}
