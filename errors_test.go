package memtab

import (
	"errors"
	"strings"
	"testing"
)

func TestDataError_ErrorAndUnwrap(t *testing.T) {
	t.Run("small data", func(t *testing.T) {
		inner := errors.New("inner")
		err := dataErrf([]byte{0xAA, 0xBB}, 1, inner, "oops")
		var de *DataError
		if !errors.As(err, &de) {
			t.Fatalf("err = %T, wanted *DataError", err)
		}
		if !errors.Is(err, inner) {
			t.Fatalf("errors.Is(err, inner) = false, wanted true")
		}
		s := err.Error()
		if !strings.Contains(s, "oops") || !strings.Contains(s, "inner") || !strings.Contains(s, "(2)") {
			t.Fatalf("err.Error() = %q, wanted message with oops/inner/(2)", s)
		}
	})

	t.Run("large data includes prefix+suffix", func(t *testing.T) {
		data := make([]byte, 200)
		for i := range data {
			data[i] = byte(i)
		}
		err := dataErrf(data, 0, nil, "oops")
		s := err.Error()
		if !strings.Contains(s, "(200)") || !strings.Contains(s, "...") {
			t.Fatalf("err.Error() = %q, wanted message with (200) and ...", s)
		}
	})
}

func TestTableError_ErrorAndUnwrap(t *testing.T) {
	tbl := setup(t, "id")
	inner := errors.New("inner")
	err := tableErrf(tbl, "id", 3, inner, "oops %d", 1)
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is(err, inner) = false, wanted true")
	}
	if s := err.Error(); s != "test_table.id/3: oops 1: inner" {
		t.Fatalf("err.Error() = %q, wanted table/index/pos/msg/inner", s)
	}

	s := (&TableError{Table: "T", Pos: -1, Err: inner}).Error()
	if s != "T: inner" {
		t.Fatalf("TableError.Error() = %q, wanted %q", s, "T: inner")
	}

	_, err = tbl.CreateIndex("missing")
	if s := err.Error(); s != "test_table.missing: column not found" {
		t.Fatalf("CreateIndex error = %q", s)
	}
}
