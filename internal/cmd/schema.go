package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Schema regenerates the schema from the fork's model sources, replacing any cached one.
type Schema struct {
	SchemaOptions `embed:""`
}

// Run is called by Kong when the schema command is executed.
func (s *Schema) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Execute(ctx, logger)
}

func (s *Schema) Execute(ctx context.Context, logger *slog.Logger) error {
	gen, variant, err := s.Generator(logger)
	if err != nil {
		return err
	}
	_, err = gen.Generate(ctx, variant)
	return err
}
