package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyService = "service"
	keyLogging = "logging"
	keyOutput  = "output"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Within a section, keys present in the file replace the
// target's values and absent keys keep them. Unknown top-level keys are
// ignored.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}
	return nil
}

// decodeSection decodes one section node onto the matching field of target.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyService:
		return node.Decode(&target.Service)
	case keyLogging:
		return node.Decode(&target.Logging)
	case keyOutput:
		return node.Decode(&target.Output)
	default:
		return nil
	}
}
