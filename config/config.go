package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/go-jsonnet"
	"github.com/op/go-logging"
	urlpkg "github.com/tliron/kutil/url"
	"gopkg.in/yaml.v3"
)

var log = logging.MustGetLogger("config")

const (
	ProtocolStdio     = "stdio"
	ProtocolTCP       = "tcp"
	ProtocolWebSocket = "websocket"
)

// Config holds the server settings. Every field may be set from a
// configuration file and overridden on the command line.
type Config struct {
	Protocol   string `yaml:"protocol"`
	Address    string `yaml:"address"`
	Log        string `yaml:"log"`
	Verbose    int    `yaml:"verbose"`
	ServerName string `yaml:"serverName"`

	// ServerVersion, when set, replaces the version built into the binary
	ServerVersion string `yaml:"serverVersion"`
}

func Default() *Config {
	return &Config{
		Protocol:   ProtocolStdio,
		Address:    ":4389",
		ServerName: "procls",
	}
}

// Load reads a configuration file or URL on top of the defaults. Jsonnet
// files are evaluated first; the result, like plain JSON, is decoded as YAML.
func Load(path string) (*Config, error) {
	urlContext := urlpkg.NewContext()
	defer urlContext.Release()

	url, err := urlpkg.NewValidURL(path, nil, urlContext)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	content, err := urlpkg.ReadString(url)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if isJsonnet(path) {
		if content, err = evaluateJsonnet(path, content); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	config, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	log.Debugf("loaded config from %s", url.String())
	return config, nil
}

// Parse decodes YAML (or JSON) content on top of the defaults.
func Parse(content string) (*Config, error) {
	config := Default()
	if strings.TrimSpace(content) == "" {
		return config, nil
	}
	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (self *Config) Validate() error {
	switch self.Protocol {
	case ProtocolStdio:
	case ProtocolTCP, ProtocolWebSocket:
		if self.Address == "" {
			return fmt.Errorf("protocol %q requires an address", self.Protocol)
		}
	default:
		return fmt.Errorf("unsupported protocol: %q", self.Protocol)
	}
	if self.Verbose < 0 {
		return fmt.Errorf("verbose must not be negative: %d", self.Verbose)
	}
	return nil
}

func isJsonnet(path string) bool {
	switch filepath.Ext(path) {
	case ".jsonnet", ".libsonnet":
		return true
	}
	return false
}

func evaluateJsonnet(path string, content string) (string, error) {
	vm := jsonnet.MakeVM()
	return vm.EvaluateSnippet(path, content)
}
