package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nspcc-dev/walletkit/pkg/aa"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the default path to the config file.
const DefaultConfigPath = "./config/walletkit.yml"

// Version is the version of the toolkit, set at build time.
var Version string

// Config top level struct representing the config of the toolkit.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
	Account                  Account                  `yaml:"Account"`
}

// ApplicationConfiguration contains settings of the command line tool.
type ApplicationConfiguration struct {
	// LogLevel is one of zap levels: debug, info, warn, error...
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
}

// Account configures the counterfactual account scheme.
type Account struct {
	Factory        string `yaml:"Factory"`
	Implementation string `yaml:"Implementation"`
	// Signature of the factory method, its selector prefixes the init code.
	Signature   string `yaml:"Signature"`
	ControlByte uint8  `yaml:"ControlByte"`
	AddressSize int    `yaml:"AddressSize"`
	// Hash is either "keccak256" or "sha256".
	Hash string `yaml:"Hash"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel: "info",
		},
		Account: Account{
			Signature:   aa.CreateAccountSignature,
			ControlByte: aa.Create2.ControlByte,
			AddressSize: aa.Create2.AddressSize,
			Hash:        "keccak256",
		},
	}
}

// LoadFile loads config from the provided path. Fields missing in the file
// keep their default values, unknown fields are an error.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Account.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the account section for consistency.
func (a Account) Validate() error {
	if a.Factory != "" && !common.IsHexAddress(a.Factory) {
		return fmt.Errorf("invalid Factory address %q", a.Factory)
	}
	if a.Implementation != "" && !common.IsHexAddress(a.Implementation) {
		return fmt.Errorf("invalid Implementation address %q", a.Implementation)
	}
	if a.AddressSize <= 0 || a.AddressSize > aa.WordSize {
		return fmt.Errorf("invalid AddressSize %d", a.AddressSize)
	}
	if !strings.Contains(a.Signature, "(") {
		return fmt.Errorf("invalid method Signature %q", a.Signature)
	}
	_, err := a.Hasher()
	return err
}

// Hasher returns the configured hash function.
func (a Account) Hasher() (aa.Hasher, error) {
	switch strings.ToLower(a.Hash) {
	case "keccak256", "":
		return aa.Keccak256, nil
	case "sha256":
		return aa.Sha256, nil
	default:
		return nil, fmt.Errorf("unknown Hash %q", a.Hash)
	}
}

// Scheme returns the derivation scheme described by the configuration.
func (a Account) Scheme() aa.Scheme {
	return aa.Scheme{
		Selector:    aa.MethodID(a.Signature),
		ControlByte: a.ControlByte,
		AddressSize: a.AddressSize,
	}
}
