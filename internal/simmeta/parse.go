// Package simmeta reads the parameter metadata that simulation runs write
// next to their output, tabulates it across runs and translates parameter
// names into the notation of the paper.
package simmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const DefaultFilter = "bdm::SimParam"

// Param is one parameter with its value rendered as text.
type Param struct {
	Key   string
	Value string
}

// Params keeps parameters in file order.
type Params []Param

func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}

// Extract returns the text from the first '{' to the last '}'.
func Extract(text []byte) ([]byte, error) {
	start := bytes.IndexByte(text, '{')
	end := bytes.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, ErrNoMetadata
	}
	return text[start : end+1], nil
}

// ParseBytes decodes the metadata object and returns the parameters stored
// under filter.
func ParseBytes(text []byte, filter string) (Params, error) {
	obj, err := Extract(text)
	if err != nil {
		return nil, err
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(obj, &top); err != nil {
		return nil, fmt.Errorf("simmeta: decode: %w", err)
	}
	raw, ok := top[filter]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, filter)
	}
	return orderedParams(raw)
}

func Parse(path, filter string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ps, err := ParseBytes(data, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// orderedParams walks a JSON object keeping key order.
func orderedParams(raw json.RawMessage) (Params, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("simmeta: parameters are not an object")
	}
	var out Params
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("simmeta: %s: %w", key, err)
		}
		out = append(out, Param{Key: key, Value: render(val)})
	}
	return out, nil
}

// render prints strings without quotes and everything else as compact JSON.
func render(val json.RawMessage) string {
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, val); err != nil {
		return string(val)
	}
	return buf.String()
}

// Search returns every regular file below folder whose name ends in
// "metadata", in lexical order.
func Search(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), "metadata") {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			files = append(files, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// RowKey names a run by the part of its path between the first "output"
// and the next one, or the full path when it has none.
func RowKey(path string) string {
	_, after, ok := strings.Cut(path, "output")
	if !ok {
		return path
	}
	key, _, _ := strings.Cut(after, "output")
	return key
}
