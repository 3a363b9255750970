package main

import (
	"os"

	"github.com/codegangsta/cli"
	"gopkg.in/yaml.v2"
)

// options is the resolved configuration for a run: flag values, with gaps
// filled in from an optional YAML defaults file.
type options struct {
	Output string `yaml:"output"`
	XSize  int    `yaml:"xsize"`
	YSize  int    `yaml:"ysize"`
	Scale  int    `yaml:"scale"`
	Legend bool   `yaml:"legend"`
}

func loadConfig(path string) (*options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg options
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge applies config file values wherever the corresponding flag was not
// set explicitly on the command line. Flags always win.
func (o *options) merge(c *cli.Context, cfg *options) {
	if !c.IsSet("output") && cfg.Output != "" {
		o.Output = cfg.Output
	}
	if !c.IsSet("xsize") && cfg.XSize != 0 {
		o.XSize = cfg.XSize
	}
	if !c.IsSet("ysize") && cfg.YSize != 0 {
		o.YSize = cfg.YSize
	}
	if !c.IsSet("scale") && cfg.Scale != 0 {
		o.Scale = cfg.Scale
	}
	if !c.IsSet("legend") && cfg.Legend {
		o.Legend = true
	}
}
