package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// EncodeYAML renders a JSON document as block-style YAML by walking its value tree.
//
// Supported subset:
//   - objects become block mappings with keys in sorted order; keys that are not plain
//     identifiers, or that YAML would read as a boolean or null, are double-quoted
//   - arrays become block sequences ("- item"); nested collections continue on the
//     same line as the dash
//   - empty objects and arrays are written in flow style as {} and []
//   - strings are always double-quoted with escapes; numbers keep their JSON text;
//     booleans and null are written as true, false and null
//
// Parsing the output with a YAML 1.2 parser yields the same value tree as parsing the
// input as JSON.
func EncodeYAML(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", fmt.Errorf("%w: trailing data after JSON value", domain.ErrDeserialization)
	}

	inline, block := yamlNode(root)
	if block == nil {
		return inline + "\n", nil
	}
	return strings.Join(block, "\n") + "\n", nil
}

// yamlNode renders v either as a single inline scalar (block == nil) or as block lines
// relative to column zero.
func yamlNode(v interface{}) (inline string, block []string) {
	switch val := v.(type) {
	case map[string]interface{}:
		if len(val) == 0 {
			return "{}", nil
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			childInline, childBlock := yamlNode(val[k])
			key := yamlKey(k)
			if childBlock == nil {
				block = append(block, key+": "+childInline)
				continue
			}
			block = append(block, key+":")
			for _, line := range childBlock {
				block = append(block, "  "+line)
			}
		}
		return "", block

	case []interface{}:
		if len(val) == 0 {
			return "[]", nil
		}
		for _, item := range val {
			childInline, childBlock := yamlNode(item)
			if childBlock == nil {
				block = append(block, "- "+childInline)
				continue
			}
			block = append(block, "- "+childBlock[0])
			for _, line := range childBlock[1:] {
				block = append(block, "  "+line)
			}
		}
		return "", block

	case string:
		return strconv.Quote(val), nil
	case json.Number:
		return val.String(), nil
	case bool:
		return strconv.FormatBool(val), nil
	case nil:
		return "null", nil
	default:
		return strconv.Quote(fmt.Sprint(val)), nil
	}
}

var plainKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// keys YAML parsers may resolve to non-string values
var reservedKeys = map[string]bool{
	"true": true, "false": true, "null": true,
	"yes": true, "no": true, "on": true, "off": true, "y": true, "n": true,
}

func yamlKey(k string) string {
	if plainKey.MatchString(k) && !reservedKeys[strings.ToLower(k)] {
		return k
	}
	return strconv.Quote(k)
}
