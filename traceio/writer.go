package traceio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/memgraph-project/memgraph/access"
)

// WriteNative serializes accesses to w in the native trace format,
// preceded by the header line, which a Stream reading the output back
// skips as a comment.
func WriteNative(w io.Writer, accesses []access.MemoryAccess) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, nativeHeader); err != nil {
		return err
	}
	for _, acc := range accesses {
		if _, err := fmt.Fprintf(bw, "%s,0x%x,%d,%d\n", acc.Op, acc.Address, acc.Size, acc.Timestamp); err != nil {
			return err
		}
	}
	return bw.Flush()
}
