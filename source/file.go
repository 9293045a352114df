package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/datazip-inc/olake-tableview/types"
)

// File reads records from a .json, .yaml or .yml file holding a list of objects.
type File struct {
	Path string
}

func (f *File) Fetch(ctx context.Context) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json", "":
		return decodeRecords(raw)
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to json: %s", f.Path, err)
		}
		return decodeRecords(converted)
	default:
		return nil, fmt.Errorf("unsupported records file extension %q", ext)
	}
}
