package xmlbuf

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "all special characters",
			input:    `a&b<c>"d'e`,
			expected: "a&amp;b&lt;c&gt;&quot;d&apos;e",
		},
		{
			name:     "plain text untouched",
			input:    "Namespace.Fixture.Case",
			expected: "Namespace.Fixture.Case",
		},
		{
			name:     "ampersand first avoids re-escaping",
			input:    "<&>",
			expected: "&lt;&amp;&gt;",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriterSelfClosesEmptyElement(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Start("test-case")
	w.Attr("id", "1")
	w.End()

	if got := w.String(); got != `<test-case id="1"/>` {
		t.Errorf("got %q", got)
	}
}

func TestWriterNestedElements(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Start("test-suite")
	w.Attr("name", "outer")
	w.Start("properties")
	w.Start("property")
	w.Attr("name", "k")
	w.Attr("value", "v")
	w.End()
	w.End()
	w.End()

	expected := `<test-suite name="outer"><properties><property name="k" value="v"/></properties></test-suite>`
	if got := w.String(); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestWriterEscapesAttributeValues(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Start("test-case")
	w.Attr("name", `Case<"1">`)
	w.End()

	if got := w.String(); got != `<test-case name="Case&lt;&quot;1&quot;&gt;"/>` {
		t.Errorf("got %q", got)
	}
}

func TestWriterCDATA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "plain text",
			text:     "boom",
			expected: "<message><![CDATA[boom]]></message>",
		},
		{
			name:     "markup left unescaped",
			text:     "a < b & c",
			expected: "<message><![CDATA[a < b & c]]></message>",
		},
		{
			name:     "embedded terminator split",
			text:     "a]]>b",
			expected: "<message><![CDATA[a]]]]><![CDATA[>b]]></message>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var w Writer
			w.Start("message")
			w.CDATA(tt.text)
			w.End()
			if got := w.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWriterAttrAfterContentPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for attribute after content")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "after element content") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()

	var w Writer
	w.Start("test-suite")
	w.Start("properties")
	w.End()
	w.Attr("late", "x")
}

func TestWriterEndWithoutStartPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for End without Start")
		}
	}()

	var w Writer
	w.End()
}
