package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the shape shared by JSON and YAML env files: a top-level "env"
// object of string key-value pairs.
//
//	env:
//	  SORTEDLIST_NAME: orders
//	  SORTEDLIST_JOIN_TIMEOUT: 250ms
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadFile loads variables from a .json, .yml or .yaml file. The result is
// meant to be passed to WithEnvOverrides.
func LoadFile(path string) (map[string]string, error) {
	name := strings.ToLower(path)

	var unmarshal func([]byte, any) error

	switch {
	case strings.HasSuffix(name, ".json"):
		unmarshal = json.Unmarshal
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, path)
	}

	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}
	if err := unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
