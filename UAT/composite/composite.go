// Package composite holds small interfaces that are substituted together, a concrete base
// type, and a func type.
package composite

import "strings"

// Reader yields the next line, or "" when there is none.
type Reader interface {
	Read() string
	Close() error
}

// Writer accepts lines.
type Writer interface {
	Write(line string) error
	Close() error
}

// Transform rewrites a line.
type Transform func(line string) (string, error)

// Buffer is a bounded line buffer.
type Buffer struct {
	Capacity int
	Lines    []string
}

// NewBuffer returns a buffer holding up to capacity lines.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{Capacity: capacity}
}

// Pipe copies lines from src to dst through transform until src is drained, then closes src.
func Pipe(src Reader, dst Writer, transform Transform) error {
	defer func() { _ = src.Close() }()

	for line := src.Read(); line != ""; line = src.Read() {
		out, err := transform(line)
		if err != nil {
			return err
		}

		err = dst.Write(strings.TrimSpace(out))
		if err != nil {
			return err
		}
	}

	return nil
}
