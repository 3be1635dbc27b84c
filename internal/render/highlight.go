package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cespare/xxhash/v2"
)

// Highlighter applies per-line syntax colors for one file. Lines repeat
// across re-renders (every resize re-renders the whole model), so results
// are memoized by a content hash.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
	memo  map[uint64]string
}

// NewHighlighter builds a highlighter for the given path. Returns nil
// when no lexer matches; callers treat a nil highlighter as plain text.
func NewHighlighter(path, styleName string) *Highlighter {
	lexer := lexers.Match(path)
	if lexer == nil {
		return nil
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: style,
		memo:  make(map[uint64]string),
	}
}

// Line returns text with ANSI colors applied. Tokenizer failures fall
// back to the raw text; a diff pane must never lose content to a
// highlighting bug.
func (h *Highlighter) Line(text string) string {
	if h == nil || text == "" {
		return text
	}

	key := xxhash.Sum64String(text)
	if out, ok := h.memo[key]; ok {
		return out
	}

	out := h.highlight(text)
	h.memo[key] = out
	return out
}

func (h *Highlighter) highlight(text string) string {
	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, h.style, iterator); err != nil {
		return text
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
