package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/csvsieve/pkg/errors"
	"github.com/arthur-debert/csvsieve/pkg/logging"
)

const envPrefix = "CSVSIEVE_"

// Load reads the configuration document at path, layered over built-in
// defaults and under CSVSIEVE_ environment overrides, and unmarshals it into a
// strict Config. Unknown keys in the document are an error, not ignored.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config.loader")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. The rules document
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"unable to load config file %q", path)
	}

	// 3. Environment overrides (output options only in practice). Env var
	// names carry no case, so they are matched case-insensitively against
	// the keys already in the tree; anything unrecognized is skipped rather
	// than tripping the strict decode below.
	canonical := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		canonical[strings.ToLower(key)] = key
	}
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lowered := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
		return canonical[lowered]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(cfg.Rules)).
		Msg("Loaded configuration")

	return cfg, nil
}

// unmarshal decodes a koanf tree into a Config, rejecting unknown keys
func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "malformed configuration document")
	}
	return &cfg, nil
}

// parserFor picks the document parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config format %q (want .json, .yaml or .toml)", filepath.Ext(path))
	}
}
