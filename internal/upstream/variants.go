package upstream

import (
	"fmt"
	"strings"
)

// ModelsPath is the in-repository directory holding the backup model classes.
// Every supported fork keeps the same layout.
const ModelsPath = "app/src/main/java/eu/kanade/tachiyomi/data/backup/models"

// Variant is an upstream fork whose backup models define the schema.
type Variant struct {
	Key        string // CLI selector, e.g. "mihon"
	Repository string // owner/name on GitHub
}

// Variants lists the known forks. The first entry is the default.
var Variants = []Variant{
	{Key: "mihon", Repository: "mihonapp/mihon"},
	{Key: "sy", Repository: "jobobby04/TachiyomiSY"},
	{Key: "j2k", Repository: "Jays2Kings/tachiyomiJ2K"},
}

// DefaultVariant returns the variant used when none is selected.
func DefaultVariant() Variant {
	return Variants[0]
}

// LookupVariant resolves a variant by its selector key.
func LookupVariant(key string) (Variant, error) {
	for _, v := range Variants {
		if v.Key == key {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown fork %q (supported: %s)", key, strings.Join(VariantKeys(), ", "))
}

// VariantKeys returns the selector keys in declaration order.
func VariantKeys() []string {
	keys := make([]string, 0, len(Variants))
	for _, v := range Variants {
		keys = append(keys, v.Key)
	}
	return keys
}
