package meta

import (
	"fmt"
	"strings"
)

// Cardinality is the proto2 label of a field.
type Cardinality string

const (
	Required Cardinality = "required"
	Optional Cardinality = "optional"
	Repeated Cardinality = "repeated"
)

// TypeKind tells a scalar wire type apart from a reference to another message or enum.
type TypeKind int

const (
	KindScalar TypeKind = iota
	KindMessageRef
)

// TypeRef is the resolved type of a field: either Scalar(wireType) or MessageRef(name).
type TypeRef struct {
	Kind TypeKind `json:"kind"`
	Name string   `json:"name"` // wire type for scalars, message/enum name for references
}

// Scalar returns a TypeRef for a protobuf scalar wire type (e.g. "string", "int32").
func Scalar(wireType string) TypeRef {
	return TypeRef{Kind: KindScalar, Name: wireType}
}

// MessageRef returns a TypeRef pointing at a message or enum defined elsewhere in the schema.
func MessageRef(name string) TypeRef {
	return TypeRef{Kind: KindMessageRef, Name: name}
}

func (t TypeRef) IsScalar() bool { return t.Kind == KindScalar }

func (t TypeRef) String() string { return t.Name }

// Valid field numbers of the binary encoding.
const (
	MinTag = 1
	MaxTag = 1<<29 - 1
)

// Field describes a single field of a scanned message.
type Field struct {
	Name        string      `json:"name"`        // Kotlin property name (e.g. "lastModifiedAt")
	Cardinality Cardinality `json:"cardinality"` // required, optional or repeated
	Type        TypeRef     `json:"type"`        // resolved wire type or message reference
	Tag         int         `json:"tag"`         // field number in the binary encoding
}

// Message describes one scanned class definition.
type Message struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"` // declaration order
}

// Render returns the message as a schema text block, including the trailing blank line.
func (m Message) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "message %s {\n", m.Name)
	for _, f := range m.Fields {
		fmt.Fprintf(&b, "  %s %s %s = %d;\n", f.Cardinality, f.Type, f.Name, f.Tag)
	}
	b.WriteString("}\n\n")
	return b.String()
}

// SourceFile holds the messages discovered in one upstream model file.
type SourceFile struct {
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// EnumValue is one constant of a hand-written enum.
type EnumValue struct {
	Name   string `json:"name"`
	Number int32  `json:"number"`
}

// Enum is a hand-written enum definition. The scanner never produces enums.
type Enum struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// Render returns the enum as a schema text block, including the trailing blank line.
func (e Enum) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", e.Name)
	for _, v := range e.Values {
		fmt.Fprintf(&b, "  %s = %d;\n", v.Name, v.Number)
	}
	b.WriteString("}\n\n")
	return b.String()
}

// Prelude holds the definitions prepended to every generated schema because they
// cannot be recovered from the upstream sources.
type Prelude struct {
	Enums    []Enum
	Messages []Message
}

// Blocks returns the prelude definitions as text blocks: enums first, then messages.
func (p Prelude) Blocks() []string {
	blocks := make([]string, 0, len(p.Enums)+len(p.Messages))
	for _, e := range p.Enums {
		blocks = append(blocks, e.Render())
	}
	for _, m := range p.Messages {
		blocks = append(blocks, m.Render())
	}
	return blocks
}

// Schema is the assembled schema document: hand-written prelude followed by
// the generated messages of every fetched file, in fetch order.
type Schema struct {
	Syntax  string // e.g. "proto2"
	Prelude Prelude
	Files   []SourceFile
}

// Render returns the schema document text consumed by the schema compiler.
func (s *Schema) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax = %q;\n\n", s.Syntax)
	for _, block := range s.Prelude.Blocks() {
		b.WriteString(block)
	}
	for _, file := range s.Files {
		fmt.Fprintf(&b, "// %s\n", file.Name)
		for _, m := range file.Messages {
			b.WriteString(m.Render())
		}
	}
	return b.String()
}

// Messages returns every generated message in document order. Prelude messages are not included.
func (s *Schema) Messages() []Message {
	var out []Message
	for _, file := range s.Files {
		out = append(out, file.Messages...)
	}
	return out
}
