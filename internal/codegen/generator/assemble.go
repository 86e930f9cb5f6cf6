package generator

import (
	"errors"
	"fmt"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

// Assemble combines the prelude with the per-file messages into one schema document.
// Files keep the order they were fetched in; nothing is sorted or deduplicated.
func Assemble(prelude meta.Prelude, files []meta.SourceFile) *meta.Schema {
	return &meta.Schema{
		Syntax:  Syntax,
		Prelude: prelude,
		Files:   files,
	}
}

// Validate checks the document before it is emitted:
//   - every message reference resolves to a prelude enum/message or a scanned message,
//   - no message name is defined twice,
//   - no tag number is used twice within one message,
//   - every tag is a valid field number.
//
// All problems are reported together.
func Validate(schema *meta.Schema) error {
	var errs []error

	// name -> where it was defined
	defined := map[string]string{}
	define := func(name, origin string) {
		if prev, ok := defined[name]; ok {
			errs = append(errs, fmt.Errorf("message %s defined in both %s and %s", name, prev, origin))
			return
		}
		defined[name] = origin
	}
	for _, e := range schema.Prelude.Enums {
		define(e.Name, "prelude")
	}
	for _, m := range schema.Prelude.Messages {
		define(m.Name, "prelude")
	}
	for _, file := range schema.Files {
		for _, m := range file.Messages {
			define(m.Name, file.Name)
		}
	}

	for _, file := range schema.Files {
		for _, m := range file.Messages {
			tags := map[int]string{}
			for _, f := range m.Fields {
				if f.Tag < meta.MinTag || f.Tag > meta.MaxTag {
					errs = append(errs, fmt.Errorf("%s: message %s: field %s has tag %d outside %d..%d", file.Name, m.Name, f.Name, f.Tag, meta.MinTag, meta.MaxTag))
				}
				if prev, ok := tags[f.Tag]; ok {
					errs = append(errs, fmt.Errorf("%s: message %s: tag %d used by both %s and %s", file.Name, m.Name, f.Tag, prev, f.Name))
				} else {
					tags[f.Tag] = f.Name
				}
				if !f.Type.IsScalar() {
					if _, ok := defined[f.Type.Name]; !ok {
						errs = append(errs, fmt.Errorf("%s: message %s: field %s references undefined type %s", file.Name, m.Name, f.Name, f.Type.Name))
					}
				}
			}
		}
	}

	return errors.Join(errs...)
}
