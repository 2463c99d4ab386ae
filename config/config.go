package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Config holds connection and import defaults loaded from an HCL file.
// Command-line flags override any value set here.
type Config struct {
	DatabaseType string `hcl:"database_type,optional"`
	Host         string `hcl:"host,optional"`
	Port         int    `hcl:"port,optional"`
	User         string `hcl:"user,optional"`
	Password     string `hcl:"password,optional"`
	Database     string `hcl:"database,optional"`
	Clear        bool   `hcl:"clear,optional"`
	Skip         int    `hcl:"skip,optional"`
	DjangoStyle  bool   `hcl:"django_style,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DatabaseType: "mysql",
		Host:         "localhost",
		Port:         3306,
	}
}

// Load reads the configuration from the given HCL file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	return cfg, nil
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("database_type", cty.StringVal(cfg.DatabaseType))
	root.SetAttributeValue("host", cty.StringVal(cfg.Host))
	root.SetAttributeValue("port", cty.NumberIntVal(int64(cfg.Port)))
	root.SetAttributeValue("user", cty.StringVal(cfg.User))
	root.SetAttributeValue("password", cty.StringVal(cfg.Password))
	root.SetAttributeValue("database", cty.StringVal(cfg.Database))
	root.SetAttributeValue("clear", cty.BoolVal(cfg.Clear))
	root.SetAttributeValue("skip", cty.NumberIntVal(int64(cfg.Skip)))
	root.SetAttributeValue("django_style", cty.BoolVal(cfg.DjangoStyle))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}
