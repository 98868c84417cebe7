/*
Package config resolves the settings of a versionstamp run.

Values are taken in this order (highest priority first):
 1. CLI flags (explicitly passed)
 2. Environment (OUT_DIR, PKG_VERSION, GOOS, GOARCH)
 3. Config file values
 4. Built-in defaults
*/
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/icedream/versionstamp"
)

// Config is the file and environment level configuration.
type Config struct {
	OutDir   string `yaml:"out_dir"`
	Version  string `yaml:"version"`
	Target   string `yaml:"target"`
	SysoDir  string `yaml:"syso_dir"`
	JSONPath string `yaml:"json_path"`

	Icon             string `yaml:"icon"`
	Company          string `yaml:"company"`
	ProductName      string `yaml:"product_name"`
	Description      string `yaml:"description"`
	Copyright        string `yaml:"copyright"`
	InternalName     string `yaml:"internal_name"`
	OriginalFilename string `yaml:"original_filename"`

	Verbose bool `yaml:"verbose"`
}

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		SysoDir: ".",
		Icon:    versionstamp.DefaultIconPath,
	}
}

// Load reads a config file and parses it over the defaults. If path is
// empty it looks for versionstamp.yaml or versionstamp.yml in the working
// directory. It returns the path that was loaded, empty if none was found.
func Load(path string) (Config, string, error) {
	cfg := Default()

	if path == "" {
		path = discover()
		if path == "" {
			return cfg, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, path, nil
}

func discover() string {
	for _, name := range []string{"versionstamp.yaml", "versionstamp.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ApplyEnv overrides c with values provided by the surrounding build.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("OUT_DIR"); ok && v != "" {
		c.OutDir = v
	}
	if v, ok := lookup("PKG_VERSION"); ok && v != "" {
		c.Version = v
	}

	goos, hasOS := lookup("GOOS")
	goarch, hasArch := lookup("GOARCH")
	if (hasOS && goos != "") || (hasArch && goarch != "") {
		if goos == "" {
			goos = runtime.GOOS
		}
		if goarch == "" {
			goarch = runtime.GOARCH
		}
		c.Target = goos + "/" + goarch
	}
}

// CLIOverrides holds values from CLI flags. A nil value means the flag was
// not explicitly set.
type CLIOverrides struct {
	OutDir   *string
	Version  *string
	Target   *string
	SysoDir  *string
	JSONPath *string
	Icon     *string
	Verbose  *bool
}

// Merge applies explicitly set CLI flags to c.
func (c *Config) Merge(o CLIOverrides) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.OutDir, o.OutDir)
	set(&c.Version, o.Version)
	set(&c.Target, o.Target)
	set(&c.SysoDir, o.SysoDir)
	set(&c.JSONPath, o.JSONPath)
	set(&c.Icon, o.Icon)
	if o.Verbose != nil {
		c.Verbose = *o.Verbose
	}
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	var errs []string

	if c.OutDir == "" {
		errs = append(errs, "out_dir: required (set --out-dir or OUT_DIR)")
	}
	if c.Version == "" {
		errs = append(errs, "version: required (set --version or PKG_VERSION)")
	}
	if c.Target != "" {
		if _, err := versionstamp.ParseTarget(c.Target); err != nil {
			errs = append(errs, "target: "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New("invalid configuration:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}

// StampConfig converts c into the configuration of a versionstamp run.
func (c *Config) StampConfig(log zerolog.Logger) (*versionstamp.Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target := versionstamp.HostTarget()
	if c.Target != "" {
		var err error
		if target, err = versionstamp.ParseTarget(c.Target); err != nil {
			return nil, err
		}
	}

	return &versionstamp.Config{
		OutDir:  c.OutDir,
		Version: c.Version,
		Target:  target,
		Resource: versionstamp.Metadata{
			IconPath:         c.Icon,
			CompanyName:      c.Company,
			ProductName:      c.ProductName,
			FileDescription:  c.Description,
			LegalCopyright:   c.Copyright,
			InternalName:     c.InternalName,
			OriginalFilename: c.OriginalFilename,
		},
		SysoDir:  c.SysoDir,
		JSONPath: c.JSONPath,
		Logger:   log,
	}, nil
}
