package document

import (
	"path/filepath"
	"strings"
)

// Format selects the source syntax.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat converts a flag value into a Format. Unknown values fall back
// to auto detection.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// DetectFormat guesses the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Result is the outcome of parsing one side. An empty or comment-only input
// is valid with a nil Doc: the document is absent, which is distinct from a
// parsed null scalar.
type Result struct {
	Valid bool
	Err   string
	Doc   *Value
}

// Parse parses source text into a value tree. FormatAuto tries JSON first
// and falls back to YAML.
func Parse(text string, format Format) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Valid: true}
	}

	switch format {
	case FormatJSON:
		v, err := parseJSON(text)
		if err != nil {
			return Result{Err: err.Error()}
		}
		return Result{Valid: true, Doc: v}

	case FormatYAML:
		v, err := parseYAML(text)
		if err != nil {
			return Result{Err: err.Error()}
		}
		return Result{Valid: true, Doc: v}

	default:
		if v, err := parseJSON(text); err == nil {
			return Result{Valid: true, Doc: v}
		}
		v, err := parseYAML(text)
		if err != nil {
			return Result{Err: err.Error()}
		}
		return Result{Valid: true, Doc: v}
	}
}
