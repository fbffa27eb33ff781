package config

import (
	"github.com/openlsr/openlsr/internal/metrics"
)

// ValidatedConfig is the immutable result of validation. It owns the area
// registry, the compiled link-monitor pattern sets, and the defaulted
// document, and exposes read-only accessors for every subsystem's settings.
//
// Nothing is mutated after Validate returns, so it may be queried
// concurrently by arbitrarily many protocol workers without locking.
// Obtaining a changed configuration means re-running Validate on a new
// document and replacing the whole object.
type ValidatedConfig struct {
	cfg   *Config
	areas *AreaRegistry

	includeItf      *PatternSet
	excludeItf      *PatternSet
	redistributeItf *PatternSet

	prefixAlloc *PrefixAllocationParams
}

// NodeName returns the configured node name.
func (v *ValidatedConfig) NodeName() string { return v.cfg.NodeName }

// Areas returns the area registry.
func (v *ValidatedConfig) Areas() *AreaRegistry { return v.areas }

// AreaIDs returns the configured area identifiers.
func (v *ValidatedConfig) AreaIDs() []string { return v.areas.IDs() }

// MatchesArea classifies a discovered neighbor or interface into areaID.
// This is the discovery fast path: the matchers were compiled once at
// validation time and the query is O(pattern count).
func (v *ValidatedConfig) MatchesArea(areaID, candidate string, kind MatchKind) bool {
	m := metrics.Get()
	m.AreaMatchQueries.WithLabelValues(areaID, kind.String()).Inc()
	matched := v.areas.Matches(areaID, candidate, kind)
	if matched {
		m.AreaMatchHits.WithLabelValues(areaID, kind.String()).Inc()
	}
	return matched
}

// PrefixForwardingType returns the validated forwarding type.
func (v *ValidatedConfig) PrefixForwardingType() string { return v.cfg.PrefixForwardingType }

// PrefixForwardingAlgorithm returns the validated forwarding algorithm.
func (v *ValidatedConfig) PrefixForwardingAlgorithm() string {
	return v.cfg.PrefixForwardingAlgorithm
}

// FloodRate returns the flood-rate limit, if configured.
func (v *ValidatedConfig) FloodRate() (FloodRate, bool) {
	if v.cfg.Kvstore.FloodRate == nil {
		return FloodRate{}, false
	}
	return *v.cfg.Kvstore.FloodRate, true
}

// Spark returns the neighbor-discovery timer settings.
func (v *ValidatedConfig) Spark() SparkConfig {
	s := *v.cfg.Spark
	sd := *s.StepDetector
	s.StepDetector = &sd
	return s
}

// Monitor returns the event-monitor settings.
func (v *ValidatedConfig) Monitor() MonitorConfig { return *v.cfg.Monitor }

// LinkMonitor returns the link-monitor settings.
func (v *ValidatedConfig) LinkMonitor() LinkMonitorConfig {
	lm := *v.cfg.LinkMonitor
	lm.IncludeInterfaceRegexes = append([]string(nil), lm.IncludeInterfaceRegexes...)
	lm.ExcludeInterfaceRegexes = append([]string(nil), lm.ExcludeInterfaceRegexes...)
	lm.RedistributeInterfaceRegexes = append([]string(nil), lm.RedistributeInterfaceRegexes...)
	return lm
}

// IncludesInterface reports whether name matches the include pattern set.
func (v *ValidatedConfig) IncludesInterface(name string) bool { return v.includeItf.Match(name) }

// ExcludesInterface reports whether name matches the exclude pattern set.
func (v *ValidatedConfig) ExcludesInterface(name string) bool { return v.excludeItf.Match(name) }

// RedistributesInterface reports whether name matches the redistribute
// pattern set.
func (v *ValidatedConfig) RedistributesInterface(name string) bool {
	return v.redistributeItf.Match(name)
}

// PrefixAllocation returns the derived allocation parameters. They are only
// present for DYNAMIC_ROOT_NODE mode.
func (v *ValidatedConfig) PrefixAllocation() (PrefixAllocationParams, bool) {
	if v.prefixAlloc == nil {
		return PrefixAllocationParams{}, false
	}
	return *v.prefixAlloc, true
}

// Bgp returns the BGP settings, if configured.
func (v *ValidatedConfig) Bgp() (BgpConfig, bool) {
	if v.cfg.Bgp == nil {
		return BgpConfig{}, false
	}
	b := *v.cfg.Bgp
	b.Peers = append([]BgpPeerConfig(nil), b.Peers...)
	return b, true
}

// BgpTranslation returns the BGP route translation settings, if present
// (including the default substituted when peering is enabled without one).
func (v *ValidatedConfig) BgpTranslation() (BgpTranslationConfig, bool) {
	if v.cfg.BgpTranslation == nil {
		return BgpTranslationConfig{}, false
	}
	return *v.cfg.BgpTranslation, true
}

// Watchdog returns the watchdog settings, if configured.
func (v *ValidatedConfig) Watchdog() (WatchdogConfig, bool) {
	if v.cfg.Watchdog == nil {
		return WatchdogConfig{}, false
	}
	return *v.cfg.Watchdog, true
}

// Feature gates, computed once from the input document.

func (v *ValidatedConfig) IsV4Enabled() bool                    { return v.cfg.EnableV4 }
func (v *ValidatedConfig) IsOrderedFibProgrammingEnabled() bool { return v.cfg.EnableOrderedFibProgramming }
func (v *ValidatedConfig) IsPrefixAllocationEnabled() bool      { return v.cfg.EnablePrefixAllocation }
func (v *ValidatedConfig) IsBgpPeeringEnabled() bool            { return v.cfg.EnableBgpPeering }
func (v *ValidatedConfig) IsWatchdogEnabled() bool              { return v.cfg.EnableWatchdog }

// RunningConfig returns the canonical JSON serialization of the validated,
// defaulted document, for diagnostics. A second validate/serialize pass over
// its output is idempotent.
func (v *ValidatedConfig) RunningConfig() ([]byte, error) {
	return GenerateJSON(v.cfg)
}

// RunningConfigHCL returns the HCL serialization of the validated document.
func (v *ValidatedConfig) RunningConfigHCL() []byte {
	return GenerateHCL(v.cfg)
}
