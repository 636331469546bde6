package query

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRequests reads a YAML list of {algorithm, from, to} entries.
// Algorithm names are normalised with ParseAlgorithm.
func LoadRequests(path string) ([]Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("query: read %s: %w", path, err)
	}

	var reqs []Request
	if err := yaml.Unmarshal(raw, &reqs); err != nil {
		return nil, fmt.Errorf("query: decode %s: %w", path, err)
	}
	for i := range reqs {
		algo, err := ParseAlgorithm(string(reqs[i].Algorithm))
		if err != nil {
			return nil, fmt.Errorf("query: %s entry %d: %w", path, i, err)
		}
		reqs[i].Algorithm = algo
	}

	return reqs, nil
}
