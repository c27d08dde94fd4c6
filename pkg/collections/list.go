package collections

import "tinyclj/pkg/value"

// Cons builds a single list cell. The empty list is value.Nil, never a
// Heap cell with a nil Cdr sentinel, so an empty list costs nothing.
func Cons(car, cdr value.Value) value.Value {
	return value.Value{Tag: value.TagHeap, Obj: value.Alloc(value.Heap{Kind: value.KindList, Car: car, Cdr: cdr})}
}

// ListFromSlice builds a proper list from items, in order.
func ListFromSlice(items []value.Value) value.Value {
	out := value.Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// ListToSlice flattens a proper list into a slice.
func ListToSlice(l value.Value) []value.Value {
	var out []value.Value
	for l.IsList() {
		out = append(out, l.Obj.Car)
		l = l.Obj.Cdr
	}
	return out
}

func ListFirst(l value.Value) value.Value {
	if !l.IsList() {
		return value.Nil
	}
	return l.Obj.Car
}

func ListRest(l value.Value) value.Value {
	if !l.IsList() {
		return value.Nil
	}
	return l.Obj.Cdr
}

func ListCount(l value.Value) int {
	n := 0
	for l.IsList() {
		n++
		l = l.Obj.Cdr
	}
	return n
}
