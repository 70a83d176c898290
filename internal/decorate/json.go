package decorate

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PrettyJSON reports whether text (with any leading timestamp/level
// prefix already stripped by the caller) parses as a JSON object or
// array, returning its multi-line pretty-printed form. Plain scalars
// (numbers, strings, bools, null) are not expanded — spec.md only calls
// for object/array expansion.
//
// encoding/json is used directly rather than a third-party pretty
// printer: the only ecosystem candidate seen across the pack
// (tidwall/gjson, pulled in transitively by eviltik-docker-tui's MCP
// dependency) is a query engine, and using it here only for
// json.Indent-equivalent formatting would not exercise the reason
// anyone depends on it. See DESIGN.md.
func PrettyJSON(text string) (pretty string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 {
		return "", false
	}
	switch trimmed[0] {
	case '{', '[':
	default:
		return "", false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}
