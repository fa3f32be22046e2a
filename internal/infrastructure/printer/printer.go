// Package printer writes the result lines in the output CSV layout.
package printer

import (
	"bufio"
	"fmt"
	"io"

	"slcsp/internal/domain/entity"
	"slcsp/internal/domain/service/resolver"
)

const Header = "zipcode,rate"

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the header followed by one line per result, in order.
func (p *Printer) Print(results []entity.Result) error {
	bw := bufio.NewWriter(p.w)

	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(bw, resolver.Line(r)); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
