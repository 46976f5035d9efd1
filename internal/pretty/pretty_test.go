package pretty

import "testing"

func TestRenderHitForward(t *testing.T) {
	got := RenderHit("AACTTG", "CACTTA", 0, "+", DefaultOptions)
	want := "" +
		"# 5'-AACTTG-3'  pattern (+)\n" +
		"#     |||| \n" +
		"# 5'-CACTTA-3'  text 0..6\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderHitReverseAndN(t *testing.T) {
	got := RenderHit("AAGTCC", "AAGNCC", 9, "-", Options{})
	want := "" +
		"# 5'-AAGTCC-3'  pattern (-, reverse complement)\n" +
		"#    |||¦||\n" +
		"# 5'-AAGNCC-3'  text 9..15\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderAlignment(t *testing.T) {
	got := RenderAlignment("ACGT", "AGT", "MDMM", DefaultOptions)
	want := "" +
		"# x  ACGT\n" +
		"#    | ||\n" +
		"# y  A-GT\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	got = RenderAlignment("AC", "GAC", "IMM", DefaultOptions)
	want = "" +
		"# x  -AC\n" +
		"#     ||\n" +
		"# y  GAC\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.ExactGlyph != "|" || d.PartialGlyph != "¦" || d.MismatchGlyph != " " || d.GapGlyph != "-" {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
