package memtab

import "testing"

func TestRecord_Basics(t *testing.T) {
	vals := []Value{Int8(1), String("a")}
	rec := NewRecord(vals...)
	vals[0] = Int8(99)
	deepEqual(t, rec.At(0).String(), "1")
	deepEqual(t, rec.Len(), 2)
	if !rec.At(5).IsNull() || !rec.At(-1).IsNull() {
		t.Errorf("At(out of range) is not Null")
	}
	deepEqual(t, rec.String(), "1\ta")

	var seen []string
	for i, v := range rec.All() {
		seen = append(seen, v.Kind().String()+":"+v.String())
		if i > 1 {
			t.Fatalf("All yielded index %d", i)
		}
	}
	deepEqual(t, seen, []string{"int8:1", "string:a"})
}

func TestRecord_CloneAndEqual(t *testing.T) {
	tbl := setup(t, "a", "b")
	rec := NewRecord(String("x"), Binary([]byte{1}))
	must(tbl.Insert(rec))

	c := rec.Clone()
	if !c.Equal(rec) {
		t.Errorf("Clone() != original")
	}
	if c.Table() != nil {
		t.Errorf("Clone() belongs to a table")
	}
	c.values[0].buf[0] = 'y'
	deepEqual(t, rec.At(0).String(), "x")
	if c.Equal(rec) {
		t.Errorf("modified clone still equals original")
	}
	if NewRecord(Int8(1)).Equal(NewRecord(Int8(1), Null())) {
		t.Errorf("records of different length compare equal")
	}
}
