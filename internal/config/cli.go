package config

import (
	"github.com/alecthomas/kong"

	"github.com/tachibk-converter/tachibk/internal/cmd"
	"github.com/tachibk-converter/tachibk/internal/log"
)

// CLI is the root command line of tachibk.
type CLI struct {
	Version kong.VersionFlag `help:"Print the version and exit"`
	Config  string           `help:"Configuration file (json, jsonc, yaml or toml)" placeholder:"PATH" env:"TACHIBK_CONFIG"`
	Log     log.Config       `embed:"" prefix:"log."`

	Convert   cmd.Convert       `cmd:"" default:"withargs" help:"Decode a backup to JSON, or encode a JSON file back into a backup"`
	Schema    cmd.Schema        `cmd:"" help:"Regenerate the backup schema from the fork's model sources"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
