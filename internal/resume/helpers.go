package resume

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Buffer sizes for transcript reading.
const (
	DefaultBufferSize = 64 * 1024        // 64KB read buffer
	MaxLineSize       = 16 * 1024 * 1024 // 16MB; longer lines are skipped
)

// Ellipsis is appended to strings cut by Truncate.
const Ellipsis = "…"

// Truncate shortens s to at most max runes. A string that fits is returned
// unchanged; otherwise the first max-1 runes are kept and Ellipsis appended,
// so the result is exactly max runes long. If max is 0 or negative, returns
// the empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + Ellipsis
}

// ForEachLine calls fn with every line of r, line terminator removed.
// Lines longer than max bytes are skipped whole instead of failing the
// read, so one oversized record (an inlined image, say) does not hide the
// rest of a transcript. The returned error is only set for read failures.
// The slice passed to fn is reused after fn returns.
func ForEachLine(r io.Reader, max int, fn func(line []byte)) error {
	br := bufio.NewReaderSize(r, DefaultBufferSize)
	var line []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > max {
				tooLong = true
				line = line[:0]
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !tooLong && len(line) > 0 {
			fn(bytes.TrimRight(line, "\r\n"))
		}
		line = line[:0]
		tooLong = false
		if err != nil {
			return nil
		}
	}
}
