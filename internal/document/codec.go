package document

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrSyntax is wrapped by Parse when the input is not a valid TOML document.
var ErrSyntax = errors.New("invalid TOML document")

// Parse decodes a TOML document into a Table.
func Parse(data []byte) (Table, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w at line %d, column %d: %w", ErrSyntax, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if obj == nil {
		obj = make(map[string]any)
	}
	return Table(obj), nil
}

// Serialize encodes t as a TOML document.
// Key order and formatting follow the encoder, not the original text.
func Serialize(t Table) ([]byte, error) {
	data, err := toml.Marshal(map[string]any(t))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return data, nil
}
