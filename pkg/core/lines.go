// pkg/core/lines.go
package core

import (
	"bufio"
	"bytes"
)

// NewLineScanner returns a line scanner over a captured command output.
// Its buffer may grow to the size of out, so no single line can stop
// the scan with bufio.ErrTooLong.
func NewLineScanner(out []byte) *bufio.Scanner {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, min(len(out)+1, bufio.MaxScanTokenSize)), len(out)+1)
	return scanner
}
