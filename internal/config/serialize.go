package config

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// GenerateHCL renders the document as formatted HCL. Only set fields are
// emitted; boolean feature gates are always emitted so a reader sees every
// gate's effective value.
func GenerateHCL(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if cfg.NodeName != "" {
		body.SetAttributeValue("node_name", cty.StringVal(cfg.NodeName))
	}
	if cfg.PrefixForwardingType != "" {
		body.SetAttributeValue("prefix_forwarding_type", cty.StringVal(cfg.PrefixForwardingType))
	}
	if cfg.PrefixForwardingAlgorithm != "" {
		body.SetAttributeValue("prefix_forwarding_algorithm", cty.StringVal(cfg.PrefixForwardingAlgorithm))
	}

	body.SetAttributeValue("enable_v4", cty.BoolVal(cfg.EnableV4))
	body.SetAttributeValue("enable_ordered_fib_programming", cty.BoolVal(cfg.EnableOrderedFibProgramming))
	body.SetAttributeValue("enable_prefix_allocation", cty.BoolVal(cfg.EnablePrefixAllocation))
	body.SetAttributeValue("enable_bgp_peering", cty.BoolVal(cfg.EnableBgpPeering))
	body.SetAttributeValue("enable_watchdog", cty.BoolVal(cfg.EnableWatchdog))

	for _, area := range cfg.Areas {
		body.AppendNewline()
		b := body.AppendNewBlock("area", []string{area.AreaID}).Body()
		if len(area.NeighborRegexes) > 0 {
			b.SetAttributeValue("neighbor_regexes", toCtyStringList(area.NeighborRegexes))
		}
		if len(area.InterfaceRegexes) > 0 {
			b.SetAttributeValue("interface_regexes", toCtyStringList(area.InterfaceRegexes))
		}
	}

	if cfg.Kvstore != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("kvstore", nil).Body()
		if fr := cfg.Kvstore.FloodRate; fr != nil {
			frBody := b.AppendNewBlock("flood_rate", nil).Body()
			frBody.SetAttributeValue("flood_msg_per_sec", cty.NumberIntVal(int64(fr.FloodMsgPerSec)))
			frBody.SetAttributeValue("flood_msg_burst_size", cty.NumberIntVal(int64(fr.FloodMsgBurstSize)))
		}
	}

	if s := cfg.Spark; s != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("spark", nil).Body()
		b.SetAttributeValue("neighbor_discovery_port", cty.NumberIntVal(int64(s.NeighborDiscoveryPort)))
		b.SetAttributeValue("hello_time_s", cty.NumberIntVal(int64(s.HelloTimeS)))
		b.SetAttributeValue("fastinit_hello_time_ms", cty.NumberIntVal(int64(s.FastinitHelloTimeMs)))
		b.SetAttributeValue("keepalive_time_s", cty.NumberIntVal(int64(s.KeepaliveTimeS)))
		b.SetAttributeValue("hold_time_s", cty.NumberIntVal(int64(s.HoldTimeS)))
		b.SetAttributeValue("graceful_restart_time_s", cty.NumberIntVal(int64(s.GracefulRestartTimeS)))
		if sd := s.StepDetector; sd != nil {
			sdBody := b.AppendNewBlock("step_detector", nil).Body()
			sdBody.SetAttributeValue("lower_threshold", cty.NumberIntVal(int64(sd.LowerThreshold)))
			sdBody.SetAttributeValue("upper_threshold", cty.NumberIntVal(int64(sd.UpperThreshold)))
			sdBody.SetAttributeValue("fast_window_size", cty.NumberIntVal(int64(sd.FastWindowSize)))
			sdBody.SetAttributeValue("slow_window_size", cty.NumberIntVal(int64(sd.SlowWindowSize)))
		}
	}

	if cfg.Monitor != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("monitor", nil).Body()
		b.SetAttributeValue("max_event_log", cty.NumberIntVal(int64(cfg.Monitor.MaxEventLog)))
	}

	if lm := cfg.LinkMonitor; lm != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("link_monitor", nil).Body()
		b.SetAttributeValue("linkflap_initial_backoff_ms", cty.NumberIntVal(int64(lm.LinkflapInitialBackoffMs)))
		b.SetAttributeValue("linkflap_max_backoff_ms", cty.NumberIntVal(int64(lm.LinkflapMaxBackoffMs)))
		if len(lm.IncludeInterfaceRegexes) > 0 {
			b.SetAttributeValue("include_interface_regexes", toCtyStringList(lm.IncludeInterfaceRegexes))
		}
		if len(lm.ExcludeInterfaceRegexes) > 0 {
			b.SetAttributeValue("exclude_interface_regexes", toCtyStringList(lm.ExcludeInterfaceRegexes))
		}
		if len(lm.RedistributeInterfaceRegexes) > 0 {
			b.SetAttributeValue("redistribute_interface_regexes", toCtyStringList(lm.RedistributeInterfaceRegexes))
		}
	}

	if pa := cfg.PrefixAllocation; pa != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("prefix_allocation", nil).Body()
		b.SetAttributeValue("prefix_allocation_mode", cty.StringVal(pa.PrefixAllocationMode))
		if pa.SeedPrefix != "" {
			b.SetAttributeValue("seed_prefix", cty.StringVal(pa.SeedPrefix))
		}
		if pa.AllocatePrefixLen != 0 {
			b.SetAttributeValue("allocate_prefix_len", cty.NumberIntVal(int64(pa.AllocatePrefixLen)))
		}
	}

	if bgp := cfg.Bgp; bgp != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("bgp", nil).Body()
		if bgp.RouterID != "" {
			b.SetAttributeValue("router_id", cty.StringVal(bgp.RouterID))
		}
		if bgp.LocalAs != 0 {
			b.SetAttributeValue("local_as", cty.NumberIntVal(int64(bgp.LocalAs)))
		}
		if bgp.HoldTimeS != 0 {
			b.SetAttributeValue("hold_time_s", cty.NumberIntVal(int64(bgp.HoldTimeS)))
		}
		for _, peer := range bgp.Peers {
			pBody := b.AppendNewBlock("peer", []string{peer.PeerAddr}).Body()
			if peer.RemoteAs != 0 {
				pBody.SetAttributeValue("remote_as", cty.NumberIntVal(int64(peer.RemoteAs)))
			}
		}
	}

	if bt := cfg.BgpTranslation; bt != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("bgp_translation", nil).Body()
		b.SetAttributeValue("disable_legacy_translation", cty.BoolVal(bt.DisableLegacyTranslation))
	}

	if wd := cfg.Watchdog; wd != nil {
		body.AppendNewline()
		b := body.AppendNewBlock("watchdog", nil).Body()
		b.SetAttributeValue("interval_s", cty.NumberIntVal(int64(wd.IntervalS)))
		b.SetAttributeValue("thread_timeout_s", cty.NumberIntVal(int64(wd.ThreadTimeoutS)))
		b.SetAttributeValue("max_memory_mb", cty.NumberIntVal(int64(wd.MaxMemoryMb)))
	}

	return f.Bytes()
}

func toCtyStringList(strs []string) cty.Value {
	vals := make([]cty.Value, 0, len(strs))
	for _, s := range strs {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}
