package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source reads one configuration layer. earlier holds the layers read
// before it, which lets the JSON source find its path. A nil config with a
// nil error means the source has nothing to contribute.
type source func(args []string, earlier []*StructuredConfig) (*StructuredConfig, error)

// load reads every source in order and merges the layers, later non-zero
// fields overriding earlier ones. Errors of all sources are reported
// together. Defaults are applied to the merged result before validation.
func load(args []string, sources ...source) (*StructuredConfig, error) {
	var (
		layers []*StructuredConfig
		errs   []error
	)
	for _, read := range sources {
		layer, err := read(args, layers)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if layer != nil {
			layers = append(layers, layer)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return merge(layers...)
}

func merge(layers ...*StructuredConfig) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	for _, layer := range layers {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromEnv(_ []string, _ []*StructuredConfig) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromFlags(args []string, _ []*StructuredConfig) (*StructuredConfig, error) {
	return ParseFlags(args)
}

// fromJSON reads the file named by the last layer that set JSONFilePath.
func fromJSON(_ []string, earlier []*StructuredConfig) (*StructuredConfig, error) {
	var path string
	for _, layer := range earlier {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return nil, nil
	}

	return parseJSON(path)
}
