package format

import "testing"

func TestCountPlaceholders(t *testing.T) {
	cases := []struct {
		tmpl string
		want int
	}{
		{"no placeholders", 0},
		{"one @ here", 1},
		{"two @ and @ here", 2},
		{"escaped @@ not counted", 0},
		{"mixed @@ and @", 1},
	}
	for _, c := range cases {
		if got := CountPlaceholders(c.tmpl); got != c.want {
			t.Errorf("CountPlaceholders(%q) = %d, want %d", c.tmpl, got, c.want)
		}
	}
}

func TestRenderPositional(t *testing.T) {
	got, err := RenderPositional("hello @, you are @ years old", []string{"Ada", "36"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "hello Ada, you are 36 years old"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRenderPositionalEscaped(t *testing.T) {
	got, err := RenderPositional("price: @@@", []string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "price: @5" {
		t.Errorf("got %q", got)
	}
}

func TestRenderPositionalCountMismatch(t *testing.T) {
	if _, err := RenderPositional("@ and @", []string{"only one"}); err == nil {
		t.Fatalf("expected a FormatError on count mismatch")
	}
}
