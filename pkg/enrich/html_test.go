package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTML(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantText  string
	}{
		{
			name:      "paragraphs and title",
			input:     `<html><head><title>Breaking News</title></head><body><p>First para</p><p>Second para</p></body></html>`,
			wantTitle: "Breaking News",
			wantText:  "First para\nSecond para",
		},
		{
			name:     "script and style are skipped",
			input:    `<body><p>visible</p><script>var hidden = 1;</script><style>.x{color:red}</style></body>`,
			wantText: "visible",
		},
		{
			name:     "inline elements do not break lines",
			input:    `<body><p>Send money to <b>winner@paytm</b> now</p></body>`,
			wantText: "Send money to winner@paytm now",
		},
		{
			name:     "malformed markup still extracts",
			input:    `<p>hello <b>world`,
			wantText: "hello world",
		},
		{
			name:      "title whitespace is trimmed",
			input:     `<title>  Spaces  </title><p>body</p>`,
			wantTitle: "Spaces",
			wantText:  "body",
		},
		{
			name:     "devanagari text survives",
			input:    `<body><p>यह एक परीक्षण है</p></body>`,
			wantText: "यह एक परीक्षण है",
		},
		{
			name:     "list items get their own lines",
			input:    `<ul><li>one</li><li>two</li></ul>`,
			wantText: "one\ntwo",
		},
		{
			name:     "empty document",
			input:    `<html><body></body></html>`,
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractHTML(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantText, got.Text)
		})
	}
}

func TestExtractHTMLCollapsesWhitespace(t *testing.T) {
	input := "<body><div>first</div>\n\n\n<div>   second    block</div><div></div><div>third</div></body>"
	got, err := ExtractHTML(strings.NewReader(input))
	require.NoError(t, err)
	assert.NotContains(t, got.Text, "  ")
	assert.NotContains(t, got.Text, "\n\n\n")
	assert.Contains(t, got.Text, "second block")
}

func TestExtractHTMLTakesFirstTitleOnly(t *testing.T) {
	input := `<title>real</title><body><title>decoy</title><p>content</p></body>`
	got, err := ExtractHTML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "real", got.Title)
	assert.Equal(t, "content", got.Text)
}
