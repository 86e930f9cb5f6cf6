package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// DefaultRootMessage is the message every container holds.
const DefaultRootMessage = "Backup"

var (
	// ErrInvalidJSON wraps failures to parse a JSON mirror.
	ErrInvalidJSON = errors.New("the input JSON file is invalid")
	// ErrInvalidPayload wraps failures to decode or encode the binary form.
	ErrInvalidPayload = errors.New("backup does not match the schema")
)

// Codec converts root messages between the binary container payload and the JSON mirror.
// Messages are dynamic: their layout comes from the compiled schema descriptor.
type Codec struct {
	root protoreflect.MessageDescriptor
}

// NewCodec looks up the root message in the compiled schema.
func NewCodec(fd protoreflect.FileDescriptor, root string) (*Codec, error) {
	if root == "" {
		root = DefaultRootMessage
	}
	md := fd.Messages().ByName(protoreflect.Name(root))
	if md == nil {
		return nil, fmt.Errorf("schema %s has no message %q", fd.Path(), root)
	}
	return &Codec{root: md}, nil
}

// Root returns the descriptor of the root message.
func (c *Codec) Root() protoreflect.MessageDescriptor {
	return c.root
}

// New returns an empty root message.
func (c *Codec) New() *dynamicpb.Message {
	return dynamicpb.NewMessage(c.root)
}

// Decode parses a container payload into a root message.
func (c *Codec) Decode(payload []byte) (proto.Message, error) {
	msg := c.New()
	if err := proto.Unmarshal(payload, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return msg, nil
}

// Encode serializes a root message into a container payload.
func (c *Codec) Encode(msg proto.Message) ([]byte, error) {
	if err := c.checkRoot(msg); err != nil {
		return nil, err
	}
	payload, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return payload, nil
}

// ToJSON renders a root message as two-space indented protobuf JSON. Field names use
// their lowerCamelCase JSON form and non-ASCII text is written unescaped.
func (c *Codec) ToJSON(msg proto.Message) ([]byte, error) {
	if err := c.checkRoot(msg); err != nil {
		return nil, err
	}
	raw, err := protojson.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	// protojson whitespace varies between runs.
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.Bytes(), nil
}

// FromJSON parses a JSON mirror into a root message. Comments and trailing commas
// are accepted. Unknown fields are an error.
func (c *Codec) FromJSON(data []byte) (proto.Message, error) {
	msg := c.New()
	if err := protojson.Unmarshal(jsonc.ToJSON(data), msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return msg, nil
}

func (c *Codec) checkRoot(msg proto.Message) error {
	if got := msg.ProtoReflect().Descriptor().FullName(); got != c.root.FullName() {
		return fmt.Errorf("expected %s message, got %s", c.root.FullName(), got)
	}
	return nil
}
