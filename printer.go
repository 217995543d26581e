package decimal

import (
	"context"
	"strings"
)

// Printer wraps printed output at a configurable column width, mirroring
// bc_num_printNewline/bc_num_putchar's shared nchars counter: every
// character written advances nchars, and whenever the next character would
// reach LineLen-1, a backslash-newline continuation is emitted first and
// nchars resets to 0. A literal '\n' also resets nchars, the same as
// bc_vm_putchar's own line-start bookkeeping. Grounded on
// original_source/src/num.c's bc_num_printNewline/bc_num_putchar (lines
// 1541-1550).
type Printer struct {
	// LineLen is the column at which output wraps. Zero means LineLen
	// (the package default).
	LineLen int
	nchars  int
}

// NewPrinter returns a Printer wrapping at the default LineLen.
func NewPrinter() *Printer {
	return &Printer{LineLen: LineLen}
}

func (p *Printer) lineLen() int {
	if p.LineLen > 0 {
		return p.LineLen
	}
	return LineLen
}

// putchar appends c to sb, inserting a backslash-newline continuation first
// if c would overrun the line, and updates nchars exactly as
// bc_num_putchar does.
func (p *Printer) putchar(sb *strings.Builder, c byte) {
	if c == '\n' {
		sb.WriteByte(c)
		p.nchars = 0
		return
	}
	if p.nchars >= p.lineLen()-1 {
		sb.WriteByte('\\')
		sb.WriteByte('\n')
		p.nchars = 0
	}
	sb.WriteByte(c)
	p.nchars++
}

// Wrap re-emits s one character at a time through putchar, inserting
// backslash-newline continuations wherever the line would overrun.
func (p *Printer) Wrap(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		p.putchar(&sb, s[i])
	}
	return sb.String()
}

// Reset zeroes the line-position counter, as bc does at the start of a
// fresh output line (vm->nchars = 0).
func (p *Printer) Reset() {
	p.nchars = 0
}

// Print renders n in the given base, wraps it at p.LineLen, and — if
// newline is true — appends a trailing '\n' (itself subject to the same
// nchars bookkeeping). base == 0 selects scientific notation, base == 1
// engineering notation, base in [2, MaxObase] positional notation in that
// base. Grounded on bc_num_print (original_source/src/num.c:1894-1914).
func (p *Printer) Print(ctx context.Context, n *Number, base int, newline bool) (string, error) {
	if base < 0 || base > MaxObase {
		return "", opErr("print", ErrSyntax)
	}

	var text string
	switch base {
	case 0:
		text = n.TextExponent(false)
	case 1:
		text = n.TextExponent(true)
	default:
		var err error
		text, err = n.Text(ctx, base)
		if err != nil {
			return "", opErr("print", err)
		}
	}

	var sb strings.Builder
	sb.Grow(len(text) + 1)
	for i := 0; i < len(text); i++ {
		p.putchar(&sb, text[i])
	}
	if newline {
		p.putchar(&sb, '\n')
	}
	return sb.String(), nil
}
