package memtab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrColumnNotFound     = errors.New("column not found")
	ErrColumnOutOfRange   = errors.New("column number out of range")
	ErrIndexAlreadyExists = errors.New("index already exists")
	ErrInvalidVariant     = errors.New("invalid value variant")
	ErrInvalidRecord      = errors.New("invalid record")
	ErrPositionOutOfRange = errors.New("record position out of range")
)

type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x", e.Msg, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s: (%d) %x", e.Msg, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x...%x", e.Msg, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s: (%d) %x...%x", e.Msg, n, p, s)
		}
	}
}

// TableError describes a failed table operation. Pos is -1 when the
// operation did not target a single record.
type TableError struct {
	Table string
	Index string
	Pos   int
	Msg   string
	Err   error
}

func tableErrf(tbl *Table, idx string, pos int, err error, format string, args ...any) error {
	return &TableError{tbl.name, idx, pos, fmt.Sprintf(format, args...), err}
}

func (e *TableError) Unwrap() error {
	return e.Err
}

func (e *TableError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Table)
	if e.Index != "" {
		buf.WriteByte('.')
		buf.WriteString(e.Index)
	}
	if e.Pos >= 0 {
		buf.WriteByte('/')
		buf.WriteString(strconv.Itoa(e.Pos))
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
		if e.Err != nil {
			buf.WriteString(": ")
			buf.WriteString(e.Err.Error())
		}
	} else if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}
