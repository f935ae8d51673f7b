package legacy

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

// readInput reads one named model file from the input directory, mapping a
// missing file onto the rba.ErrInputNotFound taxonomy.
func readInput(provider filesystem.Provider, dir, name string) ([]byte, error) {
	data, err := provider.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, rba.ErrInputNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// decodeInput unmarshals a legacy XML document, mapping syntax errors onto
// the rba.ErrMalformedModel taxonomy with line information where available.
func decodeInput(data []byte, name string, doc interface{}) error {
	if err := xml.Unmarshal(data, doc); err != nil {
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("%s (line %d): %s: %w", name, syntaxErr.Line, syntaxErr.Msg, rba.ErrMalformedModel)
		}
		return fmt.Errorf("%s: %v: %w", name, err, rba.ErrMalformedModel)
	}
	return nil
}
