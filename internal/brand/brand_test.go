package brand

import (
	"strings"
	"testing"
)

func TestBrandInitialized(t *testing.T) {
	if Name == "" {
		t.Error("Global Name should be initialized")
	}
	if LowerName != strings.ToLower(LowerName) {
		t.Errorf("LowerName must be lowercase, got %q", LowerName)
	}
	if BinaryName == "" {
		t.Error("Global BinaryName should be initialized")
	}
	if DefaultMetricsAddr == "" {
		t.Error("Global DefaultMetricsAddr should be initialized")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasPrefix(path, DefaultConfigDir+"/") {
		t.Errorf("config path %q must live under %q", path, DefaultConfigDir)
	}
	if !strings.HasSuffix(path, ConfigFileName) {
		t.Errorf("config path %q must end with %q", path, ConfigFileName)
	}
}
