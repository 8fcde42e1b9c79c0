package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/dtroode/userdirectory/internal/model"
)

//go:embed users.yaml
var embedded []byte

// Static reads the seed from a document compiled into the binary or from a
// local file.
type Static struct {
	path string
}

// NewStatic creates a Static source. An empty path selects the embedded document.
func NewStatic(path string) *Static {
	return &Static{path: path}
}

// Users decodes the seed document.
func (s *Static) Users(_ context.Context) ([]model.User, error) {
	data := embedded
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	return Decode(bytes.NewReader(data))
}
