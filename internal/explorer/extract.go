package explorer

import (
	"regexp"
	"strings"

	"github.com/gabapcia/txalert/internal/markup"
)

const (
	actionMarker    = "Transaction Action:"
	sponsoredMarker = "Sponsored:"

	// NoActionInfoText is reported when no action could be extracted.
	NoActionInfoText = "No ACTION info available"
)

var tokenPathPattern = regexp.MustCompile(`/token/0x[0-9a-fA-F]{40}`)

// TokenLink is a token reference found inside the action block.
type TokenLink struct {
	URL         string
	DisplayText string
}

// ActionResult is the action summary of a transaction.
//
// Plain is the sanitized text used for filtering and classification. Text is
// the same content rendered for MarkdownV2, with the token link (if any)
// embedded; it is already escaped.
type ActionResult struct {
	Plain     string
	Text      string
	TokenLink *TokenLink
}

// Found reports whether r carries a real action rather than the fallback.
func (r ActionResult) Found() bool {
	return r.Plain != "" && r.Plain != NoActionInfoText
}

// NoActionInfo returns the fallback result used when extraction fails.
func NoActionInfo() ActionResult {
	return ActionResult{
		Plain: NoActionInfoText,
		Text:  markup.Escape(NoActionInfoText),
	}
}

// ExtractAction isolates the action block of an explorer transaction page.
//
// The block is searched for in this order, stopping at the first one that is
// non-empty once cleaned:
//  1. the rest of the first line containing "Transaction Action:"
//  2. the line right after it
//  3. every line after it up to the next "Sponsored:" marker
//
// A "Sponsored:" marker always ends the block. The second return value is
// false when the marker is missing or every level is empty.
func ExtractAction(page, baseURL string) (ActionResult, bool) {
	fragment, ok := actionFragment(strings.Split(page, "\n"))
	if !ok {
		return ActionResult{}, false
	}

	return buildResult(fragment, baseURL), true
}

// actionFragment walks the fallback ladder and returns the raw markup of the block.
func actionFragment(lines []string) (string, bool) {
	idx := -1
	for i, line := range lines {
		if strings.Contains(line, actionMarker) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}

	_, rest, _ := strings.Cut(lines[idx], actionMarker)
	rest, sponsored := cutSponsored(rest)
	if markup.Clean(rest) != "" {
		return rest, true
	}
	if sponsored {
		return "", false
	}

	if idx+1 >= len(lines) {
		return "", false
	}

	next, _ := cutSponsored(lines[idx+1])
	if markup.Clean(next) != "" {
		return next, true
	}

	var block []string
	for _, line := range lines[idx+1:] {
		before, found := cutSponsored(line)
		block = append(block, before)
		if !found {
			continue
		}

		joined := strings.Join(block, "\n")
		if markup.Clean(joined) == "" {
			return "", false
		}
		return joined, true
	}

	return "", false
}

// cutSponsored returns the part of line before the sponsored marker and
// whether the marker was present.
func cutSponsored(line string) (string, bool) {
	before, _, found := strings.Cut(line, sponsoredMarker)
	return before, found
}

// buildResult cleans the fragment and embeds the token link when one is present.
// The link replaces the anchor the path belongs to, not the first match of its
// display text, so the same text elsewhere in the block stays plain.
func buildResult(fragment, baseURL string) ActionResult {
	plain := markup.Clean(fragment)
	result := ActionResult{
		Plain: plain,
		Text:  markup.Escape(plain),
	}

	link, ok := tokenLink(fragment, baseURL)
	if !ok {
		return result
	}

	before := markup.Clean(fragment[:link.start])
	after := markup.Clean(fragment[link.end:])

	// Only use the split rendering when it reads exactly like the cleaned block.
	if joinNonEmpty(before, link.DisplayText, after) != plain {
		return result
	}

	result.Text = joinNonEmpty(markup.Escape(before), markup.Link(link.DisplayText, link.URL), markup.Escape(after))
	result.TokenLink = &link.TokenLink

	return result
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// anchoredLink is a TokenLink plus the byte range of its raw display text
// inside the fragment.
type anchoredLink struct {
	TokenLink
	start, end int
}

// tokenLink finds the first token path in the fragment. The display text is
// the anchor content that follows the path, up to the closing </a>.
func tokenLink(fragment, baseURL string) (anchoredLink, bool) {
	loc := tokenPathPattern.FindStringIndex(fragment)
	if loc == nil {
		return anchoredLink{}, false
	}

	path := fragment[loc[0]:loc[1]]

	open := strings.Index(fragment[loc[1]:], ">")
	if open < 0 {
		return anchoredLink{}, false
	}
	start := loc[1] + open + 1

	closing := strings.Index(fragment[start:], "</a>")
	if closing < 0 {
		return anchoredLink{}, false
	}
	end := start + closing

	display := markup.Clean(fragment[start:end])
	if display == "" {
		return anchoredLink{}, false
	}

	return anchoredLink{
		TokenLink: TokenLink{
			URL:         strings.TrimRight(baseURL, "/") + path,
			DisplayText: display,
		},
		start: start,
		end:   end,
	}, true
}
