package keyword

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionsFile is the on-disk layout of an extension file.
type definitionsFile struct {
	Keywords []Definition `yaml:"keywords"`
}

// LoadDefinitions reads directive definitions from a YAML file.
//
// File layout:
//
//	keywords:
//	  - name: management
//	    minArgs: 2
//	    argTypes: [ipv4, integer]
//	  - name: topology
//	    minArgs: 1
//	    argTypes: [enum]
//	    allowedValues: [["net30", "p2p", "subnet"]]
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword definitions %q: %w", path, err)
	}

	var f definitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse keyword definitions %q: %w", path, err)
	}
	return f.Keywords, nil
}
