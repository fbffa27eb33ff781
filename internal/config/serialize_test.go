package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningConfigShowsInjectedDefaults(t *testing.T) {
	cfg, err := Validate(&Config{NodeName: "node1"})
	require.NoError(t, err)

	running, err := cfg.RunningConfig()
	require.NoError(t, err)
	out := string(running)

	// the wildcard default area and every defaulted block must be visible
	assert.Contains(t, out, `"area_id": "0"`)
	assert.Contains(t, out, `".*"`)
	assert.Contains(t, out, `"prefix_forwarding_type": "IP"`)
	assert.Contains(t, out, `"prefix_forwarding_algorithm": "SP_ECMP"`)
	assert.Contains(t, out, `"neighbor_discovery_port": 6666`)
	assert.Contains(t, out, `"hello_time_s": 20`)
	assert.Contains(t, out, `"step_detector_conf"`)
	assert.Contains(t, out, `"max_event_log": 100`)
	assert.Contains(t, out, `"linkflap_max_backoff_ms": 60000`)
}

func TestRunningConfigIdempotent(t *testing.T) {
	docs := map[string]*Config{
		"empty": {NodeName: "node1"},
		"explicit areas": {
			NodeName: "node1",
			Areas: []AreaConfig{
				{AreaID: "spine", NeighborRegexes: []string{"rsw.*"}},
				{AreaID: "leaf", InterfaceRegexes: []string{"eth.*"}},
			},
		},
		"bgp autofill": {
			NodeName:         "node1",
			EnableBgpPeering: true,
			Bgp: &BgpConfig{
				RouterID: "10.0.0.1",
				LocalAs:  65000,
				Peers:    []BgpPeerConfig{{PeerAddr: "10.0.0.2", RemoteAs: 65001}},
			},
		},
		"prefix allocation": {
			NodeName:               "node1",
			EnablePrefixAllocation: true,
			PrefixAllocation: &PrefixAllocationConfig{
				PrefixAllocationMode: AllocationModeDynamicRootNode,
				SeedPrefix:           "fc00:cafe::/56",
				AllocatePrefixLen:    64,
			},
		},
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			first, err := Validate(doc)
			require.NoError(t, err)
			out1, err := first.RunningConfig()
			require.NoError(t, err)

			redoc, err := LoadJSON(out1)
			require.NoError(t, err)
			second, err := Validate(redoc)
			require.NoError(t, err)
			out2, err := second.RunningConfig()
			require.NoError(t, err)

			assert.Equal(t, string(out1), string(out2),
				"a second validate/serialize pass must be a fixed point")
		})
	}
}

func TestRunningConfigBgpAutofillVisible(t *testing.T) {
	cfg, err := Validate(&Config{
		EnableBgpPeering: true,
		Bgp:              &BgpConfig{LocalAs: 65000},
	})
	require.NoError(t, err)

	running, err := cfg.RunningConfig()
	require.NoError(t, err)
	assert.Contains(t, string(running), `"bgp_translation_config"`)
	assert.Contains(t, string(running), `"disable_legacy_translation": false`)
}

func TestGenerateHCL(t *testing.T) {
	cfg, err := Validate(&Config{
		NodeName: "spine1",
		Areas: []AreaConfig{{
			AreaID:           "pod1",
			NeighborRegexes:  []string{"rsw.*"},
			InterfaceRegexes: []string{"eth.*"},
		}},
	})
	require.NoError(t, err)

	out := string(cfg.RunningConfigHCL())
	assert.Contains(t, out, `node_name = "spine1"`)
	assert.Contains(t, out, `area "pod1"`)
	assert.Contains(t, out, `neighbor_regexes`)
	assert.Contains(t, out, `enable_v4 = false`)
	assert.Contains(t, out, "spark {")
	assert.Contains(t, out, "step_detector {")
	assert.Contains(t, out, "link_monitor {")

	// feature gates are always emitted, even when off
	for _, gate := range []string{
		"enable_v4", "enable_ordered_fib_programming", "enable_prefix_allocation",
		"enable_bgp_peering", "enable_watchdog",
	} {
		assert.True(t, strings.Contains(out, gate+" = "), "missing gate %s", gate)
	}
}

func TestGenerateHCLRoundTrip(t *testing.T) {
	cfg, err := Validate(&Config{
		NodeName: "spine1",
		EnableV4: true,
		Areas: []AreaConfig{{
			AreaID:          "pod1",
			NeighborRegexes: []string{"rsw.*"},
		}},
		Kvstore: &KvstoreConfig{FloodRate: &FloodRate{
			FloodMsgPerSec:    1024,
			FloodMsgBurstSize: 2048,
		}},
	})
	require.NoError(t, err)

	wantJSON, err := cfg.RunningConfig()
	require.NoError(t, err)

	redoc, err := LoadHCL(cfg.RunningConfigHCL(), "roundtrip.hcl")
	require.NoError(t, err)
	recfg, err := Validate(redoc)
	require.NoError(t, err)
	gotJSON, err := recfg.RunningConfig()
	require.NoError(t, err)

	assert.Equal(t, string(wantJSON), string(gotJSON),
		"HCL serialization must survive a reload and revalidation")
}
