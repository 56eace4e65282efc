package strutil

import "strings"

// LStripWS strips leading spaces and horizontal tabs.
func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// RStripWS strips trailing spaces and horizontal tabs.
func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// CutHeader splits a header value like `text/html; charset=utf-8` into the value itself
// and its parameters. Whitespace around the separator is dropped.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return RStripWS(header), ""
	}

	return RStripWS(header[:sep]), LStripWS(header[sep+1:])
}
