package config

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// NewFromURL loads config from YAML or JSON resource
func NewFromURL(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	ret := &Config{}
	if err = loadTarget(data, isYAML(URL), ret); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config: %v", URL)
	}
	ret.URL = URL
	ret.Init()
	return ret, nil
}

func loadTarget(data []byte, yamlEncoded bool, target interface{}) error {
	aMap := map[string]interface{}{}
	if yamlEncoded {
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &aMap); err != nil {
			return err
		}
	}
	return toolbox.DefaultConverter.AssignConverted(target, aMap)
}

func isYAML(URL string) bool {
	return strings.HasSuffix(URL, ".yaml") || strings.HasSuffix(URL, ".yml")
}
