// Package frame delimits a JSON payload inside a text stream with marker
// lines, so a reader can find it among unrelated output.
package frame

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	StartMarker = "__INTROSPECT_START__"
	EndMarker   = "__INTROSPECT_END__"
)

var (
	ErrNoFrame      = errors.New("start marker not found")
	ErrUnterminated = errors.New("end marker not found")
)

// maxLine bounds a single payload line. Reports for large packages easily
// exceed bufio's 64KB default.
const maxLine = 64 << 20

// Write emits the start marker, v encoded as a single line of JSON, and the
// end marker.
func Write(w io.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	var buf bytes.Buffer
	buf.Grow(len(payload) + len(StartMarker) + len(EndMarker) + 3)
	buf.WriteString(StartMarker)
	buf.WriteByte('\n')
	buf.Write(payload)
	buf.WriteByte('\n')
	buf.WriteString(EndMarker)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// Extract returns the lines between the first start marker and the next end
// marker, joined with newlines. Everything outside the markers is ignored.
func Extract(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		inFrame bool
		payload [][]byte
	)
	for sc.Scan() {
		line := sc.Bytes()
		trimmed := strings.TrimSpace(string(line))
		switch {
		case !inFrame && trimmed == StartMarker:
			inFrame = true
		case inFrame && trimmed == EndMarker:
			return bytes.Join(payload, []byte("\n")), nil
		case inFrame:
			payload = append(payload, append([]byte(nil), line...))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading frame: %w", err)
	}
	if !inFrame {
		return nil, ErrNoFrame
	}
	return nil, ErrUnterminated
}

// Decode extracts the payload from r and unmarshals it into v.
func Decode(r io.Reader, v any) error {
	payload, err := Extract(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decoding frame payload: %w", err)
	}
	return nil
}
