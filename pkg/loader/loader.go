// Package loader reads a document file into the root value sequence.
//
// JSON is the native format; NDJSON and concatenated JSON streams load as
// one value per document. YAML and TOML files are converted into the same
// value model so the rest of the tool never cares where a document came
// from. YAML mapping order is preserved; TOML tables use sorted key order
// (the TOML decoder exposes plain maps).
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/jex/pkg/document"
)

// LoadFile reads and parses path. The file extension picks the format;
// unknown extensions fall back to content sniffing.
func LoadFile(path string) ([]document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	values, err := Load(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return values, nil
}

// LoadReader parses everything from r, sniffing the format.
func LoadReader(r io.Reader) ([]document.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Load(data, "")
}

// Load parses raw bytes. ext, when non-empty, is a file extension hint like
// ".yaml".
func Load(data []byte, ext string) ([]document.Value, error) {
	switch strings.ToLower(ext) {
	case ".json", ".ndjson", ".jsonl":
		return document.Decode(bytes.NewReader(data))
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".toml":
		return loadTOML(data)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '"' {
		return document.Decode(bytes.NewReader(data))
	}
	if looksLikeTOML(string(trimmed)) {
		return loadTOML(data)
	}
	if vals, err := loadYAML(data); err == nil {
		return vals, nil
	}
	return loadTOML(data)
}

// looksLikeTOML checks the first material line for `key = value` or a
// `[table]` header. YAML would otherwise swallow TOML as one big scalar.
func looksLikeTOML(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") && !strings.Contains(line, ",") {
			return true
		}
		return strings.Contains(line, "=") && !strings.Contains(line, ": ")
	}
	return false
}

// loadYAML decodes one or more YAML documents (--- separated) through
// yaml.Node so mapping order survives.
func loadYAML(data []byte) ([]document.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []document.Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := yamlValue(&node)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return out, nil
}

func yamlValue(node *yaml.Node) (document.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.MappingNode:
		obj := document.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make(document.Array, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.ScalarNode:
		return yamlScalar(node)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", node.Kind)
	}
}

func yamlScalar(node *yaml.Node) (document.Value, error) {
	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		return strconv.ParseBool(node.Value)
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, err
		}
		return int(i), nil
	case "!!float":
		return strconv.ParseFloat(node.Value, 64)
	default:
		return node.Value, nil
	}
}

func loadTOML(data []byte) ([]document.Value, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return []document.Value{fromPlain(m)}, nil
}

// fromPlain converts decoder output (plain maps, TOML scalar types) into the
// document model, sorting map keys for a stable order.
func fromPlain(v any) document.Value {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := document.NewObject()
		for _, k := range keys {
			obj.Set(k, fromPlain(t[k]))
		}
		return obj
	case []any:
		arr := make(document.Array, len(t))
		for i, e := range t {
			arr[i] = fromPlain(e)
		}
		return arr
	case []map[string]any:
		arr := make(document.Array, len(t))
		for i, e := range t {
			arr[i] = fromPlain(e)
		}
		return arr
	case int64:
		return int(t)
	case uint64:
		return int(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
