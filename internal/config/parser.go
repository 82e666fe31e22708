// Package config loads and validates the target configuration file.
//
// The file is INI-formatted with a single [Target] section:
//
//	[Target]
//	MacAddress=00-11-22-AA-BB-CC
//	BroadcastIp=192.168.0.255
//	Port=9
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohsungsik/Wake-On-Lan/internal/models"
	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
	"github.com/ohsungsik/Wake-On-Lan/internal/validate"
	"github.com/spf13/viper"
)

// DefaultFileName is the config file looked up next to the executable
// when no explicit path is given.
const DefaultFileName = "config.ini"

// Parser handles configuration file parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("ini")
	return &Parser{v: v}
}

// DefaultFilePath returns the path of config.ini in the directory of the
// running executable.
func DefaultFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", outcome.Wrap(outcome.FailedToGetExecutablePath, err)
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", outcome.Wrap(outcome.InvalidExecutablePath, err)
	}
	return filepath.Join(filepath.Dir(abs), DefaultFileName), nil
}

// LoadFile loads and validates configuration from a file path. On any
// failure it returns a nil config: a partially valid target is never
// exposed.
func (p *Parser) LoadFile(path string) (*models.TargetConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, outcome.Errorf(outcome.ConfigFileNotFound, "%s", path)
		}
		return nil, outcome.Wrap(outcome.ConfigFileNotReadable, err)
	}

	p.v.SetConfigFile(path)
	if err := p.v.ReadInConfig(); err != nil {
		return nil, outcome.Wrap(outcome.ConfigFileNotReadable, err)
	}

	return p.parse()
}

// LoadReader loads configuration from an in-memory document (useful for
// testing).
func (p *Parser) LoadReader(content string) (*models.TargetConfig, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, outcome.Wrap(outcome.ConfigFileNotReadable, err)
	}

	return p.parse()
}

func (p *Parser) parse() (*models.TargetConfig, error) {
	mac := strings.TrimSpace(p.v.GetString("target.macaddress"))
	if mac == "" {
		return nil, outcome.Errorf(outcome.MissingMACAddress, "MacAddress key is missing or empty")
	}

	broadcast := strings.TrimSpace(p.v.GetString("target.broadcastip"))
	if broadcast == "" {
		return nil, outcome.Errorf(outcome.MissingBroadcastAddress, "BroadcastIp key is missing or empty")
	}

	portText := strings.TrimSpace(p.v.GetString("target.port"))
	if portText == "" {
		return nil, outcome.Errorf(outcome.MissingPort, "Port key is missing or empty")
	}

	if err := validate.MACAddress(mac); err != nil {
		return nil, err
	}
	if err := validate.BroadcastAddress(broadcast); err != nil {
		return nil, err
	}
	port, err := validate.Port(portText)
	if err != nil {
		return nil, err
	}

	return &models.TargetConfig{
		MACAddress:       mac,
		BroadcastAddress: broadcast,
		Port:             port,
	}, nil
}
