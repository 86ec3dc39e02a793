package flattree

import (
	"errors"
	"fmt"
)

// ErrIndexMissing matches every *IndexMissingError via errors.Is.
var ErrIndexMissing = errors.New("index missing")

// IndexMissingError is returned by every indexed operation when the index
// is not present in the sequence, including indices that were valid before
// a deletion shrank it.
type IndexMissingError struct {
	Index int
}

func indexMissing(index int) error {
	return &IndexMissingError{index}
}

func (e *IndexMissingError) Error() string {
	return fmt.Sprintf("flattree: node with index=[%d] is requested, but missing", e.Index)
}

func (e *IndexMissingError) Is(target error) bool {
	return target == ErrIndexMissing
}

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
			return fmt.Sprintf("%s at %d: %v: (%d) %x", e.Msg, e.Off, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x", e.Msg, e.Off, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x...%x", e.Msg, e.Off, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x...%x", e.Msg, e.Off, n, p, s)
		}
	}
}
