package backup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// CompressedExtensions denote the gzip-compressed container format.
var CompressedExtensions = []string{".tachibk", ".proto.gz"}

const (
	// DefaultOutput is the output path used when none is given.
	DefaultOutput = "output.json"
	// DefaultEncodedOutput replaces DefaultOutput when encoding.
	DefaultEncodedOutput = "encoded_backup.tachibk"
	// DefaultCachePath holds the raw payload of the last decompressed container.
	DefaultCachePath = "extracted_tachibk"
)

// ErrNoBackup is returned when neither an input container nor a cached payload exists.
var ErrNoBackup = errors.New("no backup to process")

// IsCompressed reports whether path names a compressed container.
func IsCompressed(path string) bool {
	for _, ext := range CompressedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// IsJSON reports whether path names a JSON mirror, which selects the encode direction.
func IsJSON(path string) bool {
	return strings.HasSuffix(path, ".json")
}

// ResolveEncodeOutput maps the default JSON output name to the default container name.
func ResolveEncodeOutput(output string) string {
	if output == "" || output == DefaultOutput {
		return DefaultEncodedOutput
	}
	return output
}

// ReadContainer returns the raw payload of a container.
//
// A named input must exist. It is decompressed when its extension says so, and the
// payload of a compressed input is cached at cachePath. Without an input the cached
// payload of an earlier run is used. If there is none, ErrNoBackup is returned.
func ReadContainer(input, cachePath string) ([]byte, error) {
	if input != "" && !IsJSON(input) {
		payload, err := readInput(input)
		if err != nil {
			return nil, err
		}
		if IsCompressed(input) && cachePath != "" {
			if err := os.WriteFile(cachePath, payload, 0o644); err != nil {
				return nil, fmt.Errorf("failed to cache payload: %w", err)
			}
		}
		return payload, nil
	}

	if cachePath == "" {
		return nil, ErrNoBackup
	}
	payload, err := os.ReadFile(cachePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoBackup
		}
		return nil, fmt.Errorf("failed to read %s: %w", cachePath, err)
	}
	return payload, nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()

	if IsCompressed(path) {
		return Decompress(f)
	}
	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return payload, nil
}

// Decompress reads a whole gzip stream.
func Decompress(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() {
		_ = zr.Close()
	}()
	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress container: %w", err)
	}
	return payload, nil
}

// Compress gzips payload.
func Compress(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("failed to compress container: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteContainer writes payload to path, compressed iff IsCompressed(path).
// It reports whether the written file is compressed.
func WriteContainer(path string, payload []byte) (bool, error) {
	compressed := IsCompressed(path)
	data := payload
	if compressed {
		var err error
		if data, err = Compress(payload); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return compressed, nil
}
