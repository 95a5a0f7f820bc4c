package cmd

import (
	"fmt"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/token"
)

// resolveMode maps the --mode flag's string value to a token.Mode.
func resolveMode() (token.Mode, error) {
	switch mode {
	case "json":
		return token.JSON, nil
	case "jsonc":
		return token.JSONC, nil
	case "json5":
		return token.JSON5, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want json, jsonc, or json5", mode)
	}
}

func parserOptions() (parser.Options, error) {
	m, err := resolveMode()
	if err != nil {
		return parser.Options{}, err
	}
	return parser.Options{Mode: m, AllowTrailingCommas: allowTrailingCommas}, nil
}
