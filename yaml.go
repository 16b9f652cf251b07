package cellfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeTable reads a YAML table document from r. Unknown keys are rejected.
//
//	border: rounded
//	align: [left, right]
//	header: [Name, Age]
//	rows:
//	  - [alice, 30]
func DecodeTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return &t, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	for i, row := range t.Rows {
		for j, v := range row {
			if !isScalar(v) {
				return nil, fmt.Errorf("%w: rows[%d][%d] is %T, want a scalar", ErrInvalidDocument, i, j, v)
			}
		}
	}
	for _, cells := range [][]any{t.Header, t.Footer} {
		for j, v := range cells {
			if !isScalar(v) {
				return nil, fmt.Errorf("%w: cell %d is %T, want a scalar", ErrInvalidDocument, j, v)
			}
		}
	}
	return &t, nil
}

// ParseTable decodes a YAML table document.
func ParseTable(data []byte) (*Table, error) {
	return DecodeTable(bytes.NewReader(data))
}

// EncodeTable writes t as a YAML document.
func EncodeTable(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return false
	default:
		return true
	}
}
