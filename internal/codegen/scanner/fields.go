package scanner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

// BrokenPrefix marks upstream classes whose field numbers are shifted by one
// relative to their @ProtoNumber annotations.
const BrokenPrefix = "Broken"

// DefaultTag is used for declarations without a @ProtoNumber annotation.
const DefaultTag = 1

// InvalidTag marks an annotation number that does not fit an int. Schema
// validation rejects it.
const InvalidTag = -1

// fieldPattern matches one property declaration inside a class body:
//
//	@ProtoNumber(3) var title: String = "",
//	val value: Int
//
// The annotation must be the first thing on its line, so commented-out
// annotations ("// @ProtoNumber(3) ...") never match. Unannotated
// declarations are only recognised at the start of a line.
//
// Groups: 1 number, 2 name, 3 collection element type, 4 plain type, 5 optional marker.
var fieldPattern = regexp.MustCompile(
	`(?m)(?:^[ \t]*@ProtoNumber\((\d+)\)\s*|^)` +
		`va[rl]\s+(\w+):\s+` +
		`(?:(?:List|Set)<(\w+)>|(\w+))` +
		`(\?|:?\s+=)?`)

// ScanFields extracts the field descriptors of one class body (the text between the
// class definition's parentheses), in declaration order. Declarations that do not
// match a recognised shape are skipped.
func ScanFields(messageName, body string) []meta.Field {
	var fields []meta.Field
	for _, m := range fieldPattern.FindAllStringSubmatch(body, -1) {
		number, name, element, plain, optional := m[1], m[2], m[3], m[4], m[5]

		field := meta.Field{
			Name:        name,
			Cardinality: meta.Required,
			Tag:         tagNumber(messageName, number),
		}
		switch {
		case element != "":
			field.Cardinality = meta.Repeated
			field.Type = MapType(element)
		default:
			if optional != "" {
				field.Cardinality = meta.Optional
			}
			field.Type = MapType(plain)
		}
		fields = append(fields, field)
	}
	return fields
}

// tagNumber applies the annotation default and the Broken-prefix shift.
func tagNumber(messageName, annotated string) int {
	tag := DefaultTag
	if annotated != "" {
		n, err := strconv.Atoi(annotated)
		if err != nil {
			return InvalidTag
		}
		tag = n
	}
	if strings.HasPrefix(messageName, BrokenPrefix) {
		tag++
	}
	return tag
}
