package main

import (
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/tachibk-converter/tachibk/internal/config"
	"github.com/tachibk-converter/tachibk/internal/configpaths"
	"github.com/tachibk-converter/tachibk/internal/log"
	"github.com/tachibk-converter/tachibk/internal/version"
)

func main() {
	userCfg := config.FindUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("tachibk"),
		kong.Description("Convert Tachiyomi-family backups (.tachibk, .proto.gz) to JSON and back"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		// Flags and env override config file values.
		kong.Configuration(config.JSONC, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log, cli.Convert.WritesStdout())
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
