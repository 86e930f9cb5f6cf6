package generator

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

// SchemaFileName is the path of the generated schema, both on disk and inside the descriptor.
const SchemaFileName = "schema.proto"

// DescriptorSetFileName holds the compiled schema next to SchemaFileName.
const DescriptorSetFileName = "schema.binpb"

var scalarTypes = map[string]descriptorpb.FieldDescriptorProto_Type{
	"double": descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
	"float":  descriptorpb.FieldDescriptorProto_TYPE_FLOAT,
	"int32":  descriptorpb.FieldDescriptorProto_TYPE_INT32,
	"int64":  descriptorpb.FieldDescriptorProto_TYPE_INT64,
	"uint32": descriptorpb.FieldDescriptorProto_TYPE_UINT32,
	"uint64": descriptorpb.FieldDescriptorProto_TYPE_UINT64,
	"bool":   descriptorpb.FieldDescriptorProto_TYPE_BOOL,
	"string": descriptorpb.FieldDescriptorProto_TYPE_STRING,
	"bytes":  descriptorpb.FieldDescriptorProto_TYPE_BYTES,
}

var labels = map[meta.Cardinality]descriptorpb.FieldDescriptorProto_Label{
	meta.Required: descriptorpb.FieldDescriptorProto_LABEL_REQUIRED,
	meta.Optional: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL,
	meta.Repeated: descriptorpb.FieldDescriptorProto_LABEL_REPEATED,
}

// BuildFileDescriptor translates the schema document into the descriptor a schema
// compiler would produce for its rendered text.
func BuildFileDescriptor(schema *meta.Schema) (*descriptorpb.FileDescriptorProto, error) {
	enums := map[string]bool{}
	fd := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(SchemaFileName),
		Syntax: proto.String(schema.Syntax),
	}

	for _, e := range schema.Prelude.Enums {
		enums[e.Name] = true
		ed := &descriptorpb.EnumDescriptorProto{Name: proto.String(e.Name)}
		for _, v := range e.Values {
			ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
				Name:   proto.String(v.Name),
				Number: proto.Int32(v.Number),
			})
		}
		fd.EnumType = append(fd.EnumType, ed)
	}

	messages := append(append([]meta.Message(nil), schema.Prelude.Messages...), schema.Messages()...)
	for _, m := range messages {
		md := &descriptorpb.DescriptorProto{Name: proto.String(m.Name)}
		for _, f := range m.Fields {
			field, err := buildField(f, enums)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", m.Name, err)
			}
			md.Field = append(md.Field, field)
		}
		fd.MessageType = append(fd.MessageType, md)
	}
	return fd, nil
}

func buildField(f meta.Field, enums map[string]bool) (*descriptorpb.FieldDescriptorProto, error) {
	if f.Tag < meta.MinTag || f.Tag > meta.MaxTag {
		return nil, fmt.Errorf("field %s: tag %d outside %d..%d", f.Name, f.Tag, meta.MinTag, meta.MaxTag)
	}
	label, ok := labels[f.Cardinality]
	if !ok {
		return nil, fmt.Errorf("field %s: unknown cardinality %q", f.Name, f.Cardinality)
	}
	field := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(f.Name),
		Number: proto.Int32(int32(f.Tag)),
		Label:  label.Enum(),
	}

	switch {
	case f.Type.IsScalar():
		typ, ok := scalarTypes[f.Type.Name]
		if !ok {
			return nil, fmt.Errorf("field %s: unsupported wire type %q", f.Name, f.Type.Name)
		}
		field.Type = typ.Enum()
	case enums[f.Type.Name]:
		field.Type = descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum()
		field.TypeName = proto.String("." + f.Type.Name)
	default:
		field.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
		field.TypeName = proto.String("." + f.Type.Name)
	}
	return field, nil
}

// Compile validates the schema and builds a resolved file descriptor from it. The
// result drives the container codec in place of generated bindings.
func Compile(schema *meta.Schema) (protoreflect.FileDescriptor, error) {
	if err := Validate(schema); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	fdp, err := BuildFileDescriptor(schema)
	if err != nil {
		return nil, err
	}
	fd, err := protodesc.NewFile(fdp, new(protoregistry.Files))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", SchemaFileName, err)
	}
	return fd, nil
}

// MarshalDescriptorSet serializes fd as a single-file FileDescriptorSet.
func MarshalDescriptorSet(fd protoreflect.FileDescriptor) ([]byte, error) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{protodesc.ToFileDescriptorProto(fd)},
	}
	return proto.Marshal(set)
}

// UnmarshalDescriptorSet loads a descriptor set written by MarshalDescriptorSet.
func UnmarshalDescriptorSet(data []byte) (protoreflect.FileDescriptor, error) {
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode descriptor set: %w", err)
	}
	files, err := protodesc.NewFiles(&set)
	if err != nil {
		return nil, fmt.Errorf("resolve descriptor set: %w", err)
	}
	fd, err := files.FindFileByPath(SchemaFileName)
	if err != nil {
		return nil, fmt.Errorf("descriptor set has no %s: %w", SchemaFileName, err)
	}
	return fd, nil
}
