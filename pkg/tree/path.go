package tree

import "strings"

// prefixThrough returns the longest prefix of s ending in, and including,
// Separator, searching only the region of s before its final ignore bytes.
// It returns "" when that region holds no separator. A separator-terminated
// result fed back in with ignore 1 comes out strictly shorter, so trimming
// loops terminate.
func prefixThrough(s string, ignore int) string {
	end := len(s) - ignore
	if end <= 0 {
		return ""
	}
	i := strings.LastIndex(s[:end], Separator)
	if i < 0 {
		return ""
	}
	return s[:i+1]
}

// parentPrefix returns the candidate parent path of p: everything through
// the separator closing p's second-to-last segment. The final byte is always
// excluded from the search, so a directory path never becomes its own
// candidate.
func parentPrefix(p string) string {
	return prefixThrough(p, 1)
}
