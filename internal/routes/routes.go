// Package routes edits the project's route table file.
//
// The route table is treated as semi-structured text, never parsed into a
// JSX AST: a route entry is one line carrying path/name attributes, and
// edits touch exactly that line while leaving every other byte of the file
// alone, including its line-ending convention.
package routes

import (
	"regexp"
	"strings"
)

// Entry is one route declaration found in the route table.
type Entry struct {
	// Path is the route's URL path attribute, e.g. "/about".
	Path string

	// Name is the route's name attribute, e.g. "about".
	Name string

	// Page is the page component identifier, e.g. "AboutPage".
	Page string

	// NotFound marks the catch-all route, which has no path.
	NotFound bool

	// Line is the 1-based line number of the entry.
	Line int
}

// Match selects a route entry by its path or name attribute. A route
// matches when its path equals Path or its name equals Name; empty fields
// never match.
type Match struct {
	Path string
	Name string
}

var (
	routeLineRe   = regexp.MustCompile(`<Route\s`)
	pathAttrRe    = regexp.MustCompile(`\bpath="([^"]*)"`)
	nameAttrRe    = regexp.MustCompile(`\bname="([^"]*)"`)
	pageAttrRe    = regexp.MustCompile(`\bpage=\{([A-Za-z0-9_]+)\}`)
	notFoundRe    = regexp.MustCompile(`\bnotfound\b`)
	quotedValueRe = regexp.MustCompile(`"[^"]*"`)
	closeTagRe    = regexp.MustCompile(`</Router>`)
)

// Parse lists the route entries declared in the content, in file order.
func Parse(content string) []Entry {
	var entries []Entry
	for i, line := range splitLines(content) {
		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		entry.Line = i + 1
		entries = append(entries, entry)
	}
	return entries
}

func parseLine(line string) (Entry, bool) {
	if !routeLineRe.MatchString(line) {
		return Entry{}, false
	}
	var e Entry
	if m := pathAttrRe.FindStringSubmatch(line); m != nil {
		e.Path = m[1]
	}
	if m := nameAttrRe.FindStringSubmatch(line); m != nil {
		e.Name = m[1]
	}
	if m := pageAttrRe.FindStringSubmatch(line); m != nil {
		e.Page = m[1]
	}
	// notfound is a bare attribute; quoted values are blanked first so a
	// route with path="/notfound" or name="notfound" is not the catch-all.
	e.NotFound = notFoundRe.MatchString(quotedValueRe.ReplaceAllString(line, `""`))
	if e.Path == "" && e.Name == "" && !e.NotFound {
		return Entry{}, false
	}
	return e, true
}

// Remove deletes the first route line matching m and reports whether a line
// was removed. All other lines are preserved byte-for-byte; a miss returns
// the content unchanged.
func Remove(content string, m Match) (string, bool) {
	lines := splitLines(content)
	for i, line := range lines {
		entry, ok := parseLine(line)
		if !ok || entry.NotFound {
			continue
		}
		if (m.Path != "" && entry.Path == m.Path) || (m.Name != "" && entry.Name == m.Name) {
			return strings.Join(append(lines[:i], lines[i+1:]...), ""), true
		}
	}
	return content, false
}

// Insert adds a route line for a page before the notfound route (or, absent
// one, before the closing router tag), copying the indentation of its
// neighbors and the file's line-ending convention.
func Insert(content, path, page, name string) (string, bool) {
	eol := lineEnding(content)
	route := `<Route path="` + path + `" page={` + page + `} name="` + name + `" />`

	lines := splitLines(content)
	insertAt := -1
	for i, line := range lines {
		if entry, ok := parseLine(line); ok && entry.NotFound {
			insertAt = i
			break
		}
	}
	if insertAt == -1 {
		for i, line := range lines {
			if closeTagRe.MatchString(line) {
				insertAt = i
				break
			}
		}
	}
	if insertAt == -1 {
		return content, false
	}

	indent := indentFor(lines, insertAt)
	newLine := indent + route + eol
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, newLine)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, ""), true
}

// indentFor picks the indentation of the nearest preceding route line, or of
// the anchor line plus two spaces when no route exists yet.
func indentFor(lines []string, anchor int) string {
	for i := anchor - 1; i >= 0; i-- {
		if _, ok := parseLine(lines[i]); ok {
			return leadingWhitespace(lines[i])
		}
	}
	if entry, ok := parseLine(lines[anchor]); ok && entry.NotFound {
		return leadingWhitespace(lines[anchor])
	}
	return leadingWhitespace(lines[anchor]) + "  "
}

func leadingWhitespace(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// splitLines splits content keeping each line's terminator attached, so that
// rejoining with "" reproduces the input byte-for-byte.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
