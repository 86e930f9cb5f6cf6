package scanner

import (
	"regexp"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

// classPattern matches the head of a top-level class definition up to its opening parenthesis.
var classPattern = regexp.MustCompile(`(?m)^(?:data )?class (\w+)\(`)

// ScanClasses finds every top-level (optionally data-qualified) class in a Kotlin source
// file and scans its constructor parameter list. Messages are returned in source order.
func ScanClasses(src string) []meta.Message {
	var messages []meta.Message
	next := 0
	for _, loc := range classPattern.FindAllStringSubmatchIndex(src, -1) {
		if loc[0] < next {
			// Inside the parameter list of the previous class.
			continue
		}
		name := src[loc[2]:loc[3]]
		end, ok := matchParen(src, loc[1])
		if !ok {
			continue
		}
		next = end + 1
		messages = append(messages, meta.Message{
			Name:   name,
			Fields: ScanFields(name, src[loc[1]:end]),
		})
	}
	return messages
}

// matchParen returns the index of the parenthesis closing the one just before start.
func matchParen(src string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
