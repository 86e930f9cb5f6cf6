package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
	"github.com/tachibk-converter/tachibk/internal/codegen/scanner"
	"github.com/tachibk-converter/tachibk/internal/configpaths"
	"github.com/tachibk-converter/tachibk/internal/upstream"
)

// Fetcher lists and downloads the model sources of a variant.
type Fetcher interface {
	ListModelFiles(ctx context.Context, variant upstream.Variant) ([]upstream.ModelFile, error)
}

type Generator struct {
	fetcher   Fetcher
	schemaDir string
	logger    *slog.Logger
}

func New(fetcher Fetcher, schemaDir string, logger *slog.Logger) *Generator {
	return &Generator{
		fetcher:   fetcher,
		schemaDir: schemaDir,
		logger:    logger,
	}
}

// SchemaPath is where the rendered schema document is written.
func (g *Generator) SchemaPath() string {
	return filepath.Join(g.schemaDir, SchemaFileName)
}

// DescriptorSetPath is where the compiled schema is cached.
func (g *Generator) DescriptorSetPath() string {
	return filepath.Join(g.schemaDir, DescriptorSetFileName)
}

// ScanAll fetches the variant's model files and scans each into messages.
func (g *Generator) ScanAll(ctx context.Context, variant upstream.Variant) (*meta.Schema, error) {
	g.logger.Info("Fetching backup models", "fork", strings.ToUpper(variant.Key), "repository", variant.Repository)
	models, err := g.fetcher.ListModelFiles(ctx, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch models from %s: %w", variant.Repository, err)
	}

	files := make([]meta.SourceFile, 0, len(models))
	for _, model := range models {
		messages := scanner.ScanClasses(model.Source)
		g.logger.Info("Parsed model file", "file", model.Name, "messages", len(messages))
		files = append(files, meta.SourceFile{Name: model.Name, Messages: messages})
	}
	return Assemble(DefaultPrelude(), files), nil
}

// Generate derives the schema for variant, compiles it, and writes both the schema
// document and the compiled descriptor set. Nothing is written if compilation fails.
func (g *Generator) Generate(ctx context.Context, variant upstream.Variant) (protoreflect.FileDescriptor, error) {
	schema, err := g.ScanAll(ctx, variant)
	if err != nil {
		return nil, err
	}

	fd, err := Compile(schema)
	if err != nil {
		return nil, err
	}
	set, err := MarshalDescriptorSet(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptor set: %w", err)
	}

	if err := configpaths.EnsureDir(g.SchemaPath()); err != nil {
		return nil, fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := os.WriteFile(g.SchemaPath(), []byte(schema.Render()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write schema: %w", err)
	}
	if err := os.WriteFile(g.DescriptorSetPath(), set, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write descriptor set: %w", err)
	}

	g.logger.Info("Schema generated",
		"schema", g.SchemaPath(),
		"messages", len(schema.Messages()))
	return fd, nil
}

// Load reads a previously compiled schema. A missing cache is reported as os.ErrNotExist.
func (g *Generator) Load() (protoreflect.FileDescriptor, error) {
	data, err := os.ReadFile(g.DescriptorSetPath())
	if err != nil {
		return nil, err
	}
	fd, err := UnmarshalDescriptorSet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.DescriptorSetPath(), err)
	}
	return fd, nil
}

// LoadOrGenerate reuses the cached schema unless regenerate is set or no cache exists.
func (g *Generator) LoadOrGenerate(ctx context.Context, variant upstream.Variant, regenerate bool) (protoreflect.FileDescriptor, error) {
	if !regenerate {
		fd, err := g.Load()
		if err == nil {
			g.logger.Debug("Using cached schema", "path", g.DescriptorSetPath())
			return fd, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		g.logger.Info("No protobuf schema found, generating", "path", g.DescriptorSetPath())
	}
	return g.Generate(ctx, variant)
}
