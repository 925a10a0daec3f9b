package source

import (
	"context"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlSource decodes definitions from a YAML document.
type yamlSource struct {
	r io.Reader
}

// NewYAMLSource creates a Source decoding definitions from r. The reader is
// consumed on the first Load.
func NewYAMLSource(r io.Reader) Source {
	return &yamlSource{r: r}
}

func (s *yamlSource) Load(ctx context.Context) (Definitions, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return Definitions{}, errors.Join(ErrDecodingFailed, err)
	}

	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return Definitions{}, errors.Join(ErrDecodingFailed, err)
	}
	return defs, nil
}
