// Package brand provides centralized naming constants for the daemon.
// The identity is loaded from brand.json at compile time via go:embed so
// packaging scripts can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information.
type Brand struct {
	Name               string `json:"name"`
	LowerName          string `json:"lowerName"`
	Description        string `json:"description"`
	BinaryName         string `json:"binaryName"`
	ServiceName        string `json:"serviceName"`
	ConfigFileName     string `json:"configFileName"`
	DefaultConfigDir   string `json:"defaultConfigDir"`
	DefaultStateDir    string `json:"defaultStateDir"`
	DefaultMetricsAddr string `json:"defaultMetricsAddr"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Description = b.Description
	BinaryName = b.BinaryName
	ServiceName = b.ServiceName
	ConfigFileName = b.ConfigFileName
	DefaultConfigDir = b.DefaultConfigDir
	DefaultStateDir = b.DefaultStateDir
	DefaultMetricsAddr = b.DefaultMetricsAddr
}

// Exported identity values, initialized from brand.json.
var (
	Name               string
	LowerName          string
	Description        string
	BinaryName         string
	ServiceName        string
	ConfigFileName     string
	DefaultConfigDir   string
	DefaultStateDir    string
	DefaultMetricsAddr string
)

// DefaultConfigPath returns the full path of the default configuration file.
func DefaultConfigPath() string {
	return DefaultConfigDir + "/" + ConfigFileName
}
