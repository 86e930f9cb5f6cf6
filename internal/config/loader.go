package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tidwall/jsonc"
)

// JSONC loads a JSON configuration file that may contain comments and trailing commas.
func JSONC(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return kong.JSON(bytes.NewReader(jsonc.ToJSON(data)))
}

// FindUserConfig returns the config file named by --config or TACHIBK_CONFIG.
// It runs before kong parses so the file can take part in config resolution.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("TACHIBK_CONFIG")
}
