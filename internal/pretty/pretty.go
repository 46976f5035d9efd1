// Package pretty draws ASCII alignment blocks for text output.
package pretty

import (
	"fmt"
	"strings"
)

// Options control the ASCII rendering.
type Options struct {
	// Glyphs
	ExactGlyph    string // default "|"
	PartialGlyph  string // default "¦", either side is N
	MismatchGlyph string // default " "
	GapGlyph      string // default "-"
}

// DefaultOptions is the standard look.
var DefaultOptions = Options{
	ExactGlyph:    "|",
	PartialGlyph:  "¦",
	MismatchGlyph: " ",
	GapGlyph:      "-",
}

const (
	linePrefix = "# "
	prefixPlus = "5'-"
	suffixPlus = "-3'"
)

func (o Options) withDefaults() Options {
	if o.ExactGlyph == "" {
		o.ExactGlyph = DefaultOptions.ExactGlyph
	}
	if o.PartialGlyph == "" {
		o.PartialGlyph = DefaultOptions.PartialGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

// matchLine draws one glyph per column of two equal-length rows.
func matchLine(a, b string, opt Options) string {
	n := min(len(a), len(b))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		switch {
		case a[i] == b[i] && a[i] != 'N':
			sb.WriteString(opt.ExactGlyph)
		case a[i] == 'N' || b[i] == 'N':
			sb.WriteString(opt.PartialGlyph)
		default:
			sb.WriteString(opt.MismatchGlyph)
		}
	}
	return sb.String()
}

// RenderHit draws the searched sequence over the text window it aligned to.
// probe is the pattern as searched on the forward strand (the reverse
// complement for '-' hits).
func RenderHit(probe, site string, offset int, strand string, opt Options) string {
	opt = opt.withDefaults()
	label := "pattern (+)"
	if strand == "-" {
		label = "pattern (-, reverse complement)"
	}
	pad := strings.Repeat(" ", len(prefixPlus))

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s%s  %s\n", linePrefix, prefixPlus, probe, suffixPlus, label)
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, matchLine(probe, site, opt))
	fmt.Fprintf(&b, "%s%s%s%s  text %d..%d\n", linePrefix, prefixPlus, site, suffixPlus, offset, offset+len(site))
	return b.String()
}

// RenderAlignment draws x over y following an edit transcript of M (match),
// R (replace), I (insert into x) and D (delete from x).
func RenderAlignment(x, y, transcript string, opt Options) string {
	opt = opt.withDefaults()
	var top, mid, bot strings.Builder
	i, j := 0, 0
	for k := 0; k < len(transcript); k++ {
		switch transcript[k] {
		case 'M', 'R':
			top.WriteByte(x[i])
			bot.WriteByte(y[j])
			mid.WriteString(matchLine(x[i:i+1], y[j:j+1], opt))
			i++
			j++
		case 'I':
			top.WriteString(opt.GapGlyph)
			bot.WriteByte(y[j])
			mid.WriteString(opt.MismatchGlyph)
			j++
		case 'D':
			top.WriteByte(x[i])
			bot.WriteString(opt.GapGlyph)
			mid.WriteString(opt.MismatchGlyph)
			i++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%sx  %s\n", linePrefix, top.String())
	fmt.Fprintf(&b, "%s   %s\n", linePrefix, mid.String())
	fmt.Fprintf(&b, "%sy  %s\n", linePrefix, bot.String())
	return b.String()
}
