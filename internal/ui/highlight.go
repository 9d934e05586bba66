package ui

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightTheme is the chroma style used for descriptor files
const highlightTheme = "catppuccin-mocha"

// keyFileExts are XDG key files; chroma has no lexer of its own for them
var keyFileExts = map[string]string{
	".desktop":   "Desktop Entry",
	".directory": "Directory Entry",
}

// FileType names the kind of file shown by inspect
func FileType(path string) string {
	if name, ok := keyFileExts[strings.ToLower(filepath.Ext(path))]; ok {
		return name
	}
	if l := lexers.Match(filepath.Base(path)); l != nil {
		return l.Config().Name
	}
	return "Text"
}

// lexerFor picks a lexer by file name; key files use the INI lexer
func lexerFor(path string) chroma.Lexer {
	var l chroma.Lexer
	if _, ok := keyFileExts[strings.ToLower(filepath.Ext(path))]; ok {
		l = lexers.Get("ini")
	} else {
		l = lexers.Match(filepath.Base(path))
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Highlight writes text to w with terminal colors chosen for path
func Highlight(w io.Writer, text, path string) error {
	it, err := lexerFor(path).Tokenise(nil, text)
	if err != nil {
		_, werr := io.WriteString(w, text)
		return werr
	}

	style := styles.Get(highlightTheme)
	if style == nil {
		style = styles.Fallback
	}
	return formatters.TTY256.Format(w, style, it)
}
