// Package pathutil implements the dot-segment removal of RFC 3986 section 5.2.4.
package pathutil

import (
	"strings"
)

// RemoveDotSegments removes "." and ".." segments from path p.
// Unlike [path.Clean] it keeps empty segments and trailing slashes,
// and never lets ".." climb above the root.
func RemoveDotSegments(p string) string {
	if strings.IndexByte(p, '.') < 0 {
		return p
	}

	out := make([]string, 0, strings.Count(p, "/")+1)
	in := p
	for len(in) > 0 {
		switch {
		// A
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// B
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// C
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = pop(out)
		case in == "/..":
			in = "/"
			out = pop(out)
		// D
		case in == "." || in == "..":
			in = ""
		// E
		default:
			n := 0
			if in[0] == '/' {
				n = 1
			}
			if i := strings.IndexByte(in[n:], '/'); i >= 0 {
				n += i
			} else {
				n = len(in)
			}
			out = append(out, in[:n])
			in = in[n:]
		}
	}
	return strings.Join(out, "")
}

func pop(s []string) []string {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}
