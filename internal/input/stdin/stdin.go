// Package stdin is the local, non-network stand-in for a physical steno
// machine: it reads whitespace-separated stroke tokens from an io.Reader,
// one token per call to Next, the same interface shape a real machine
// driver would implement.
package stdin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/stenoglyph/steno/internal/input"
	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// Source reads stroke tokens line by line from an underlying io.Reader.
type Source struct {
	scanner *bufio.Scanner
	pending []string
}

var _ input.Source = (*Source)(nil)

// New wraps r as a stroke Source.
func New(r io.Reader) *Source {
	return &Source{scanner: bufio.NewScanner(r)}
}

// Next returns the next whitespace-separated token as a Stroke. A blank
// line yields no stroke and Next continues reading the next line rather
// than returning. Next returns ok=false, err=nil once the reader is
// exhausted. A token containing "/" is rejected: this harness expects
// single-stroke tokens, the same as a real machine would send.
func (s *Source) Next(ctx context.Context) (stroke.Stroke, bool, error) {
	for {
		select {
		case <-ctx.Done():
			return stroke.Stroke{}, false, ctx.Err()
		default:
		}

		if len(s.pending) > 0 {
			tok := s.pending[0]
			s.pending = s.pending[1:]
			if strings.Contains(tok, "/") {
				return stroke.Stroke{}, false, fmt.Errorf("stdin input: token %q names multiple strokes, want one", tok)
			}
			return stroke.New(tok), true, nil
		}

		if !s.scanner.Scan() {
			return stroke.Stroke{}, false, s.scanner.Err()
		}

		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		s.pending = fields
	}
}
