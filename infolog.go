package glw

import (
	"bytes"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// fetchLog reads an info log with the two-call idiom: the caller has
// already queried GL_INFO_LOG_LENGTH, which includes the trailing NUL.
func fetchLog(length int32, fill func(buf []byte) int32) (string, error) {
	if length <= 1 {
		return "", nil
	}
	buf := make([]byte, length)
	n := fill(buf)
	if n < 0 {
		n = 0
	}
	if int(n) > len(buf) {
		n = int32(len(buf))
	}
	return sanitizeLog(buf[:n])
}

// sanitizeLog trims what drivers commonly leave around a log and replaces
// invalid UTF-8 with U+FFFD. Driver logs are nominally ASCII but several
// vendors pass source bytes through unchanged.
func sanitizeLog(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	b = bytes.TrimRight(b, " \t\r\n")
	s, _, err := transform.String(runes.ReplaceIllFormed(), string(b))
	if err != nil {
		return "", err
	}
	return s, nil
}
