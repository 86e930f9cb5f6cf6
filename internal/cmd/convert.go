package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/tachibk-converter/tachibk/internal/backup"
)

// StdoutPath selects standard output as the conversion target.
const StdoutPath = "-"

// Convert decodes a backup into its JSON mirror, or encodes a JSON mirror back
// into a backup when the input ends in ".json".
type Convert struct {
	SchemaOptions `embed:""`

	Input       string `short:"i" help:"Backup to convert: .tachibk or .proto.gz container, uncompressed payload, or decoded .json" placeholder:"PATH" env:"TACHIBK_INPUT"`
	Output      string `short:"o" help:"Output file, or - for stdout. Defaults to encoded_backup.tachibk when encoding" default:"output.json" placeholder:"PATH"`
	Cache       string `help:"Raw payload of the last decompressed backup, used when the input is missing" default:"extracted_tachibk" env:"TACHIBK_CACHE"`
	Regenerate  bool   `help:"Regenerate the schema even if a compiled one exists"`
	RootMessage string `help:"Top-level message of a backup" default:"Backup" hidden:""`

	Stdout io.Writer `kong:"-"`
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WritesStdout reports whether converted data goes to standard output.
func (c *Convert) WritesStdout() bool {
	return c.Output == StdoutPath
}

// Run is called by Kong when the convert command is executed.
func (c *Convert) Run(kctx *kong.Context, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := c.Execute(ctx, logger)
	if (errors.Is(err, backup.ErrNoBackup) || errors.Is(err, os.ErrNotExist)) && kctx != nil {
		_ = kctx.PrintUsage(false)
	}
	return err
}

// Execute picks the direction from the input name and converts.
func (c *Convert) Execute(ctx context.Context, logger *slog.Logger) error {
	if backup.IsJSON(c.Input) {
		return c.encode(ctx, logger)
	}
	return c.decode(ctx, logger)
}

func (c *Convert) decode(ctx context.Context, logger *slog.Logger) error {
	payload, err := backup.ReadContainer(c.Input, c.Cache)
	if err != nil {
		return err
	}
	codec, err := c.codec(ctx, logger)
	if err != nil {
		return err
	}
	msg, err := codec.Decode(payload)
	if err != nil {
		return err
	}
	data, err := codec.ToJSON(msg)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = backup.DefaultOutput
	}
	if output == StdoutPath {
		_, err := c.stdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Info("Backup decoded", "output", output)
	return nil
}

func (c *Convert) encode(ctx context.Context, logger *slog.Logger) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}
	codec, err := c.codec(ctx, logger)
	if err != nil {
		return err
	}
	msg, err := codec.FromJSON(data)
	if err != nil {
		return err
	}
	payload, err := codec.Encode(msg)
	if err != nil {
		return err
	}

	output := backup.ResolveEncodeOutput(c.Output)
	if output == StdoutPath {
		w := c.stdout()
		if isTerminal(w) {
			return errors.New("refusing to write a binary backup to a terminal; redirect stdout or pass -o <file>")
		}
		_, err := w.Write(payload)
		return err
	}

	compressed, err := backup.WriteContainer(output, payload)
	if err != nil {
		return err
	}
	if compressed {
		logger.Info("Compressed backup written", "output", output)
	} else {
		logger.Info("Uncompressed backup written", "output", output)
	}
	return nil
}

func (c *Convert) codec(ctx context.Context, logger *slog.Logger) (*backup.Codec, error) {
	gen, variant, err := c.Generator(logger)
	if err != nil {
		return nil, err
	}
	fd, err := gen.LoadOrGenerate(ctx, variant, c.Regenerate)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}
	root := c.RootMessage
	if root == "" {
		root = backup.DefaultRootMessage
	}
	return backup.NewCodec(fd, root)
}

func (c *Convert) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
