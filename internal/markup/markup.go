// Package markup turns explorer HTML fragments into plain text and renders
// plain text for Telegram's MarkdownV2 dialect.
//
// Clean works on untrusted markup and produces plain text. Escape must be
// applied exactly once to plain text, after every content substitution has
// been made; Link and Bold produce already-escaped output and must not be
// passed through Escape again.
package markup

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<.*?>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// parens are swapped for look-alike glyphs so action text never collides
	// with MarkdownV2 link syntax.
	parens = strings.NewReplacer("(", "❨", ")", "❩")

	boilerplate = []string{"Click to show more", "Click to show less"}

	escaper = strings.NewReplacer(
		`\`, `\\`,
		"_", `\_`,
		"*", `\*`,
		"[", `\[`,
		"]", `\]`,
		"(", `\(`,
		")", `\)`,
		"~", `\~`,
		"`", "\\`",
		">", `\>`,
		"#", `\#`,
		"+", `\+`,
		"-", `\-`,
		"=", `\=`,
		"|", `\|`,
		"{", `\{`,
		"}", `\}`,
		".", `\.`,
		"!", `\!`,
	)

	// Inside the (...) part of a link only ')' and '\' are reserved.
	urlEscaper = strings.NewReplacer(`\`, `\\`, ")", `\)`)
)

// collapse folds every whitespace run into one space and trims the result.
func collapse(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// Clean strips tags from raw, normalizes whitespace, rewrites parentheses to
// bracket glyphs and removes the explorer's show more/less boilerplate.
func Clean(raw string) string {
	text := tagPattern.ReplaceAllString(raw, " ")
	text = collapse(text)
	text = parens.Replace(text)

	for _, phrase := range boilerplate {
		text = strings.ReplaceAll(text, phrase, "")
	}

	return collapse(text)
}

// Escape prefixes every MarkdownV2 reserved character in s with a backslash.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Link renders a MarkdownV2 inline link. text is plain text; url is used as is
// apart from the characters MarkdownV2 reserves inside link targets.
func Link(text, url string) string {
	return "[" + Escape(text) + "](" + urlEscaper.Replace(url) + ")"
}

// Bold renders plain text s as bold.
func Bold(s string) string {
	return "*" + Escape(s) + "*"
}
