package config

import "fmt"

// validForwardingTypes and validForwardingAlgorithms are the accepted enum
// values for prefix forwarding.
var (
	validForwardingTypes = map[string]bool{
		ForwardingTypeIP:     true,
		ForwardingTypeSrMpls: true,
	}
	validForwardingAlgorithms = map[string]bool{
		ForwardingAlgorithmSpEcmp:     true,
		ForwardingAlgorithmKsp2EdEcmp: true,
	}
	validAllocationModes = map[string]bool{
		AllocationModeDynamicLeafNode: true,
		AllocationModeDynamicRootNode: true,
		AllocationModeStatic:          true,
	}
)

// Validate checks every cross-field invariant of the document and assembles
// the immutable runtime configuration. It fails on the first violated
// invariant; no partially-valid result is ever returned. The caller's
// document is not modified: validation runs on a defaulted deep copy.
//
// Checks run in a fixed order because later checks depend on state derived
// earlier (the area registry in particular).
func Validate(doc *Config) (*ValidatedConfig, error) {
	if doc == nil {
		return nil, newError(KindInvalidArgument, "", "configuration document is nil")
	}

	cfg := doc.Clone()
	if cfg == nil {
		return nil, newError(KindParse, "", "configuration document could not be copied")
	}
	cfg.applyDefaults()

	v := &ValidatedConfig{cfg: cfg, areas: NewAreaRegistry()}

	steps := []func() error{
		v.populateAreas,
		v.checkForwarding,
		v.checkSingleAreaFeatures,
		v.checkFloodRate,
		v.checkSpark,
		v.checkMonitor,
		v.checkLinkMonitor,
		v.checkPrefixAllocation,
		v.checkBgp,
		v.checkWatchdog,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// populateAreas registers every declared area, synthesizing the wildcard
// default area when the document declares none.
func (v *ValidatedConfig) populateAreas() error {
	if len(v.cfg.Areas) == 0 {
		v.cfg.Areas = []AreaConfig{{
			AreaID:           DefaultAreaID,
			NeighborRegexes:  []string{".*"},
			InterfaceRegexes: []string{".*"},
		}}
	}
	for _, area := range v.cfg.Areas {
		if err := v.areas.AddArea(area.AreaID, area.NeighborRegexes, area.InterfaceRegexes); err != nil {
			return err
		}
	}
	return nil
}

// checkForwarding validates the forwarding type/algorithm enums and their
// compatibility: KSP2_ED_ECMP computes disjoint paths and needs source
// routing, so it requires SR_MPLS.
func (v *ValidatedConfig) checkForwarding() error {
	if !validForwardingTypes[v.cfg.PrefixForwardingType] {
		return newError(KindInvalidArgument, "prefix_forwarding_type",
			"invalid prefix_forwarding_type %q", v.cfg.PrefixForwardingType)
	}
	if !validForwardingAlgorithms[v.cfg.PrefixForwardingAlgorithm] {
		return newError(KindInvalidArgument, "prefix_forwarding_algorithm",
			"invalid prefix_forwarding_algorithm %q", v.cfg.PrefixForwardingAlgorithm)
	}
	if v.cfg.PrefixForwardingAlgorithm == ForwardingAlgorithmKsp2EdEcmp &&
		v.cfg.PrefixForwardingType != ForwardingTypeSrMpls {
		return newError(KindIncompatibleMode, "prefix_forwarding_type",
			"prefix_forwarding_type must be set to %s for %s",
			ForwardingTypeSrMpls, ForwardingAlgorithmKsp2EdEcmp)
	}
	return nil
}

// checkSingleAreaFeatures rejects features that only support a single-area
// topology when more than one area is configured.
func (v *ValidatedConfig) checkSingleAreaFeatures() error {
	if v.areas.Len() <= 1 {
		return nil
	}
	if v.cfg.EnableOrderedFibProgramming {
		return newError(KindIncompatibleMode, "enable_ordered_fib_programming",
			"enable_ordered_fib_programming only supports single area config")
	}
	if v.cfg.EnablePrefixAllocation {
		return newError(KindIncompatibleMode, "enable_prefix_allocation",
			"prefix_allocation only supports single area config")
	}
	return nil
}

func (v *ValidatedConfig) checkFloodRate() error {
	fr := v.cfg.Kvstore.FloodRate
	if fr == nil {
		return nil
	}
	if fr.FloodMsgPerSec <= 0 {
		return newError(KindOutOfRange, "kvstore_config.flood_rate.flood_msg_per_sec",
			"flood_msg_per_sec (%d) should be > 0", fr.FloodMsgPerSec)
	}
	if fr.FloodMsgBurstSize <= 0 {
		return newError(KindOutOfRange, "kvstore_config.flood_rate.flood_msg_burst_size",
			"flood_msg_burst_size (%d) should be > 0", fr.FloodMsgBurstSize)
	}
	return nil
}

// checkSpark validates the neighbor-discovery timers and their relative
// order.
func (v *ValidatedConfig) checkSpark() error {
	s := v.cfg.Spark
	const field = "spark_config"

	if s.NeighborDiscoveryPort < 1 || s.NeighborDiscoveryPort > 65535 {
		return newError(KindOutOfRange, field+".neighbor_discovery_port",
			"neighbor_discovery_port (%d) should be in range [1, 65535]", s.NeighborDiscoveryPort)
	}
	if s.HelloTimeS <= 0 {
		return newError(KindOutOfRange, field+".hello_time_s",
			"hello_time_s (%d) should be > 0", s.HelloTimeS)
	}
	// Fast initial discovery sends hellos with the solicit bit set so a new
	// link is discovered in hundreds of milliseconds rather than a full
	// hello period.
	if s.FastinitHelloTimeMs <= 0 {
		return newError(KindOutOfRange, field+".fastinit_hello_time_ms",
			"fastinit_hello_time_ms (%d) should be > 0", s.FastinitHelloTimeMs)
	}
	if s.FastinitHelloTimeMs > 1000*s.HelloTimeS {
		return newError(KindInvalidArgument, field+".fastinit_hello_time_ms",
			"fastinit_hello_time_ms (%d) should be <= hello_time_s (%d) * 1000",
			s.FastinitHelloTimeMs, s.HelloTimeS)
	}
	// The hello send rate is bound by the keepalive time, which must not
	// exceed the hold time advertised to neighbors.
	if s.KeepaliveTimeS <= 0 {
		return newError(KindOutOfRange, field+".keepalive_time_s",
			"keepalive_time_s (%d) should be > 0", s.KeepaliveTimeS)
	}
	if s.KeepaliveTimeS > s.HoldTimeS {
		return newError(KindInvalidArgument, field+".keepalive_time_s",
			"keepalive_time_s (%d) should be <= hold_time_s (%d)",
			s.KeepaliveTimeS, s.HoldTimeS)
	}
	if s.HoldTimeS <= 0 {
		return newError(KindOutOfRange, field+".hold_time_s",
			"hold_time_s (%d) should be > 0", s.HoldTimeS)
	}
	if s.GracefulRestartTimeS <= 0 {
		return newError(KindOutOfRange, field+".graceful_restart_time_s",
			"graceful_restart_time_s (%d) should be > 0", s.GracefulRestartTimeS)
	}
	// A restarting neighbor must survive at least three missed keepalives
	// before it is declared down.
	if s.GracefulRestartTimeS < 3*s.KeepaliveTimeS {
		return newError(KindInvalidArgument, field+".graceful_restart_time_s",
			"graceful_restart_time_s (%d) should be >= 3 * keepalive_time_s (%d)",
			s.GracefulRestartTimeS, s.KeepaliveTimeS)
	}

	sd := s.StepDetector
	if sd.LowerThreshold < 0 || sd.UpperThreshold < 0 || sd.LowerThreshold >= sd.UpperThreshold {
		return newError(KindInvalidArgument, field+".step_detector_conf",
			"lower_threshold (%d) should be < upper_threshold (%d), and both should be >= 0",
			sd.LowerThreshold, sd.UpperThreshold)
	}
	if sd.FastWindowSize < 0 || sd.SlowWindowSize < 0 || sd.FastWindowSize > sd.SlowWindowSize {
		return newError(KindInvalidArgument, field+".step_detector_conf",
			"fast_window_size (%d) should be <= slow_window_size (%d), and both should be >= 0",
			sd.FastWindowSize, sd.SlowWindowSize)
	}
	return nil
}

func (v *ValidatedConfig) checkMonitor() error {
	if v.cfg.Monitor.MaxEventLog < 0 {
		return newError(KindOutOfRange, "monitor_config.max_event_log",
			"max_event_log (%d) should be >= 0", v.cfg.Monitor.MaxEventLog)
	}
	return nil
}

// checkLinkMonitor validates the link-flap backoff bounds and compiles the
// three independent interface pattern sets.
func (v *ValidatedConfig) checkLinkMonitor() error {
	lm := v.cfg.LinkMonitor
	const field = "link_monitor_config"

	if lm.LinkflapInitialBackoffMs < 0 {
		return newError(KindOutOfRange, field+".linkflap_initial_backoff_ms",
			"linkflap_initial_backoff_ms (%d) should be >= 0", lm.LinkflapInitialBackoffMs)
	}
	if lm.LinkflapMaxBackoffMs < 0 {
		return newError(KindOutOfRange, field+".linkflap_max_backoff_ms",
			"linkflap_max_backoff_ms (%d) should be >= 0", lm.LinkflapMaxBackoffMs)
	}
	if lm.LinkflapInitialBackoffMs > lm.LinkflapMaxBackoffMs {
		return newError(KindOutOfRange, field+".linkflap_initial_backoff_ms",
			"linkflap_initial_backoff_ms (%d) should be <= linkflap_max_backoff_ms (%d)",
			lm.LinkflapInitialBackoffMs, lm.LinkflapMaxBackoffMs)
	}

	sets := []struct {
		name     string
		patterns []string
		dst      **PatternSet
	}{
		{"include_interface_regexes", lm.IncludeInterfaceRegexes, &v.includeItf},
		{"exclude_interface_regexes", lm.ExcludeInterfaceRegexes, &v.excludeItf},
		{"redistribute_interface_regexes", lm.RedistributeInterfaceRegexes, &v.redistributeItf},
	}
	for _, set := range sets {
		compiled, err := CompilePatterns(set.patterns)
		if err != nil {
			return newError(KindPatternCompile, fmt.Sprintf("%s.%s", field, set.name),
				"failed to compile %v", err)
		}
		*set.dst = compiled
	}
	return nil
}

// checkPrefixAllocation validates the mode-specific prefix-allocation rules
// and derives the allocation parameters for the root-node mode.
func (v *ValidatedConfig) checkPrefixAllocation() error {
	if !v.cfg.EnablePrefixAllocation {
		return nil
	}

	pa := v.cfg.PrefixAllocation
	if pa == nil {
		return newError(KindInvalidArgument, "prefix_allocation_config",
			"enable_prefix_allocation = true, but prefix_allocation_config is empty")
	}
	if !validAllocationModes[pa.PrefixAllocationMode] {
		return newError(KindInvalidArgument, "prefix_allocation_config.prefix_allocation_mode",
			"invalid prefix_allocation_mode %q", pa.PrefixAllocationMode)
	}

	switch pa.PrefixAllocationMode {
	case AllocationModeDynamicRootNode:
		params, err := ComputeAllocationParams(pa.SeedPrefix, pa.AllocatePrefixLen)
		if err != nil {
			return err
		}
		if params.IsV4() && !v.cfg.EnableV4 {
			return newError(KindInvalidArgument, "prefix_allocation_config.seed_prefix",
				"v4 seed_prefix detected, but enable_v4 = false")
		}
		v.prefixAlloc = &params

	case AllocationModeDynamicLeafNode, AllocationModeStatic:
		if pa.SeedPrefix != "" || pa.AllocatePrefixLen > 0 {
			return newError(KindInvalidArgument, "prefix_allocation_config",
				"prefix_allocation_mode != %s, seed_prefix and allocate_prefix_len must be empty",
				AllocationModeDynamicRootNode)
		}
	}
	return nil
}

// checkBgp validates BGP peering consistency. A missing translation config
// with peering enabled is substituted with a default rather than rejected.
func (v *ValidatedConfig) checkBgp() error {
	if !v.cfg.EnableBgpPeering {
		return nil
	}
	if v.cfg.Bgp == nil {
		return newError(KindInvalidArgument, "bgp_config",
			"enable_bgp_peering = true, but bgp_config is empty")
	}
	if v.cfg.BgpTranslation == nil {
		// Transitional compatibility: legacy peers do not ship a translation
		// config yet. TODO: reject a missing bgp_translation_config once all
		// peers include one.
		v.cfg.BgpTranslation = &BgpTranslationConfig{}
	}
	return nil
}

func (v *ValidatedConfig) checkWatchdog() error {
	if v.cfg.EnableWatchdog && v.cfg.Watchdog == nil {
		return newError(KindInvalidArgument, "watchdog_config",
			"enable_watchdog = true, but watchdog_config is empty")
	}
	return nil
}
