// Package traceio implements the external parser for MemGraph's native
// textual trace format: comma-separated operation,address,size,timestamp
// records, read lazily so a trace never needs to fit in memory as one
// slice. Parsing lives outside the pure core: malformed-line conditions
// are logged and the offending line is skipped, never surfaced as a
// core configuration error.
package traceio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/memgraph-project/memgraph/access"
)

// nativeHeader is the optional first-line marker native trace files may
// carry; when present it is treated as a comment like any other "#" line.
const nativeHeader = "# MemGraph Trace v1"

// Stream adapts a native-format trace reader to access.Stream, expanding
// each Modify ("M") record into a Read followed by a Write.
type Stream struct {
	scanner  *bufio.Scanner
	logger   *zap.Logger
	lineNo   int
	pending  []access.MemoryAccess
	warnings *multierror.Error
}

// NewStream wraps r as a Stream. A nil logger disables warning logging;
// skip diagnostics are still collected and retrievable via Warnings.
func NewStream(r io.Reader, logger *zap.Logger) *Stream {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stream{scanner: bufio.NewScanner(r), logger: logger}
}

// Next implements access.Stream, reading and validating one line at a
// time. Malformed lines are skipped with a logged warning and recorded
// in Warnings, never aborting the stream.
func (s *Stream) Next() (access.MemoryAccess, bool, error) {
	if len(s.pending) > 0 {
		acc := s.pending[0]
		s.pending = s.pending[1:]
		return acc, true, nil
	}

	for s.scanner.Scan() {
		s.lineNo++
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || line == nativeHeader || strings.HasPrefix(line, "#") {
			continue
		}

		acc, expanded, err := s.parseLine(line)
		if err != nil {
			s.warn(err)
			continue
		}
		if expanded != nil {
			s.pending = append(s.pending, *expanded)
		}
		return acc, true, nil
	}

	if err := s.scanner.Err(); err != nil {
		return access.MemoryAccess{}, false, err
	}
	return access.MemoryAccess{}, false, nil
}

// Warnings returns the accumulated skip diagnostics, or nil if every line
// parsed cleanly.
func (s *Stream) Warnings() error {
	if s.warnings == nil {
		return nil
	}
	return s.warnings
}

func (s *Stream) warn(err error) {
	s.logger.Warn("traceio: skipping malformed trace line", zap.Int("line", s.lineNo), zap.Error(err))
	s.warnings = multierror.Append(s.warnings, fmt.Errorf("line %d: %w", s.lineNo, err))
}

// parseLine parses one non-comment line. For an "M" record it returns the
// Read as the primary access and the paired Write as expanded, queued for
// the following Next call.
func (s *Stream) parseLine(line string) (access.MemoryAccess, *access.MemoryAccess, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return access.MemoryAccess{}, nil, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	opStr := strings.ToUpper(strings.TrimSpace(fields[0]))
	addr, err := parseAddress(strings.TrimSpace(fields[1]))
	if err != nil {
		return access.MemoryAccess{}, nil, fmt.Errorf("address: %w", err)
	}
	size, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 8)
	if err != nil {
		return access.MemoryAccess{}, nil, fmt.Errorf("size: %w", err)
	}
	ts, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return access.MemoryAccess{}, nil, fmt.Errorf("timestamp: %w", err)
	}

	base := access.MemoryAccess{Address: addr, Size: uint8(size), Timestamp: ts}
	switch opStr {
	case "R":
		base.Op = access.Read
		return base, nil, nil
	case "W":
		base.Op = access.Write
		return base, nil, nil
	case "M":
		read := base
		read.Op = access.Read
		write := base
		write.Op = access.Write
		return read, &write, nil
	default:
		return access.MemoryAccess{}, nil, fmt.Errorf("unrecognized operation %q", opStr)
	}
}

// parseAddress accepts a "0x"/"0X"-prefixed hex literal (the documented
// native format) and, for lines that omit the prefix, falls back from hex
// to decimal — mirroring the leniency of the format's original parser.
func parseAddress(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	if v, err := strconv.ParseUint(s, 16, 64); err == nil {
		return v, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
