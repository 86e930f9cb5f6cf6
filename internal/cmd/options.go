package cmd

import (
	"log/slog"
	"net/http"

	"github.com/tachibk-converter/tachibk/internal/codegen/generator"
	"github.com/tachibk-converter/tachibk/internal/upstream"
)

// SchemaOptions select the fork whose models define the schema and where the
// generated schema is kept. Shared by the convert and schema commands.
type SchemaOptions struct {
	Fork        string `help:"Fork whose backup models define the schema" default:"mihon" enum:"mihon,sy,j2k" env:"TACHIBK_FORK"`
	SchemaDir   string `help:"Directory holding schema.proto and the compiled schema" default:"." env:"TACHIBK_SCHEMA_DIR"`
	GitHubToken string `name:"github-token" help:"GitHub token used for the contents API (optional, raises the rate limit)" env:"GITHUB_TOKEN"`
	GitHubAPI   string `name:"github-api" help:"GitHub API base URL" default:"https://api.github.com" env:"TACHIBK_GITHUB_API"`

	// HTTPClient overrides the client used for upstream requests.
	HTTPClient *http.Client `kong:"-"`
}

// Generator resolves the fork and builds a schema generator backed by the GitHub contents API.
func (o *SchemaOptions) Generator(logger *slog.Logger) (*generator.Generator, upstream.Variant, error) {
	variant, err := upstream.LookupVariant(o.Fork)
	if err != nil {
		return nil, upstream.Variant{}, err
	}
	client, err := upstream.NewClient(upstream.Config{
		BaseURL:    o.GitHubAPI,
		Token:      o.GitHubToken,
		HTTPClient: o.HTTPClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, upstream.Variant{}, err
	}
	return generator.New(client, o.SchemaDir, logger), variant, nil
}
