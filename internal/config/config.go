package config

// Prefix forwarding types and algorithms. A specific algorithm may require a
// specific forwarding type, see Validate.
const (
	ForwardingTypeIP     = "IP"
	ForwardingTypeSrMpls = "SR_MPLS"

	ForwardingAlgorithmSpEcmp     = "SP_ECMP"
	ForwardingAlgorithmKsp2EdEcmp = "KSP2_ED_ECMP"
)

// Prefix allocation modes.
const (
	AllocationModeDynamicLeafNode = "DYNAMIC_LEAF_NODE"
	AllocationModeDynamicRootNode = "DYNAMIC_ROOT_NODE"
	AllocationModeStatic          = "STATIC"
)

// DefaultAreaID is the area synthesized when the document declares none.
const DefaultAreaID = "0"

// Config is the top-level declarative configuration document. It is the typed
// form of the interchange document and carries no derived state; Validate
// turns it into a ValidatedConfig.
type Config struct {
	NodeName string `hcl:"node_name,optional" json:"node_name,omitempty" yaml:"node_name,omitempty"`

	Areas []AreaConfig `hcl:"area,block" json:"areas" yaml:"areas"`

	PrefixForwardingType      string `hcl:"prefix_forwarding_type,optional" json:"prefix_forwarding_type,omitempty" yaml:"prefix_forwarding_type,omitempty"`
	PrefixForwardingAlgorithm string `hcl:"prefix_forwarding_algorithm,optional" json:"prefix_forwarding_algorithm,omitempty" yaml:"prefix_forwarding_algorithm,omitempty"`

	Kvstore     *KvstoreConfig     `hcl:"kvstore,block" json:"kvstore_config,omitempty" yaml:"kvstore_config,omitempty"`
	Spark       *SparkConfig       `hcl:"spark,block" json:"spark_config,omitempty" yaml:"spark_config,omitempty"`
	Monitor     *MonitorConfig     `hcl:"monitor,block" json:"monitor_config,omitempty" yaml:"monitor_config,omitempty"`
	LinkMonitor *LinkMonitorConfig `hcl:"link_monitor,block" json:"link_monitor_config,omitempty" yaml:"link_monitor_config,omitempty"`

	PrefixAllocation *PrefixAllocationConfig `hcl:"prefix_allocation,block" json:"prefix_allocation_config,omitempty" yaml:"prefix_allocation_config,omitempty"`
	Bgp              *BgpConfig              `hcl:"bgp,block" json:"bgp_config,omitempty" yaml:"bgp_config,omitempty"`
	BgpTranslation   *BgpTranslationConfig   `hcl:"bgp_translation,block" json:"bgp_translation_config,omitempty" yaml:"bgp_translation_config,omitempty"`
	Watchdog         *WatchdogConfig         `hcl:"watchdog,block" json:"watchdog_config,omitempty" yaml:"watchdog_config,omitempty"`

	EnableV4                    bool `hcl:"enable_v4,optional" json:"enable_v4" yaml:"enable_v4"`
	EnableOrderedFibProgramming bool `hcl:"enable_ordered_fib_programming,optional" json:"enable_ordered_fib_programming" yaml:"enable_ordered_fib_programming"`
	EnablePrefixAllocation      bool `hcl:"enable_prefix_allocation,optional" json:"enable_prefix_allocation" yaml:"enable_prefix_allocation"`
	EnableBgpPeering            bool `hcl:"enable_bgp_peering,optional" json:"enable_bgp_peering" yaml:"enable_bgp_peering"`
	EnableWatchdog              bool `hcl:"enable_watchdog,optional" json:"enable_watchdog" yaml:"enable_watchdog"`
}

// AreaConfig declares a topology area and the patterns that classify
// discovered neighbors and interfaces into it.
type AreaConfig struct {
	AreaID           string   `hcl:"area_id,label" json:"area_id" yaml:"area_id"`
	NeighborRegexes  []string `hcl:"neighbor_regexes,optional" json:"neighbor_regexes,omitempty" yaml:"neighbor_regexes,omitempty"`
	InterfaceRegexes []string `hcl:"interface_regexes,optional" json:"interface_regexes,omitempty" yaml:"interface_regexes,omitempty"`
}

// KvstoreConfig configures the distributed state store.
type KvstoreConfig struct {
	FloodRate *FloodRate `hcl:"flood_rate,block" json:"flood_rate,omitempty" yaml:"flood_rate,omitempty"`
}

// FloodRate limits state-advertisement flooding.
type FloodRate struct {
	FloodMsgPerSec    int `hcl:"flood_msg_per_sec" json:"flood_msg_per_sec" yaml:"flood_msg_per_sec"`
	FloodMsgBurstSize int `hcl:"flood_msg_burst_size" json:"flood_msg_burst_size" yaml:"flood_msg_burst_size"`
}

// SparkConfig configures neighbor discovery timers.
type SparkConfig struct {
	NeighborDiscoveryPort int `hcl:"neighbor_discovery_port,optional" json:"neighbor_discovery_port" yaml:"neighbor_discovery_port"`
	HelloTimeS            int `hcl:"hello_time_s,optional" json:"hello_time_s" yaml:"hello_time_s"`
	FastinitHelloTimeMs   int `hcl:"fastinit_hello_time_ms,optional" json:"fastinit_hello_time_ms" yaml:"fastinit_hello_time_ms"`
	KeepaliveTimeS        int `hcl:"keepalive_time_s,optional" json:"keepalive_time_s" yaml:"keepalive_time_s"`
	HoldTimeS             int `hcl:"hold_time_s,optional" json:"hold_time_s" yaml:"hold_time_s"`
	GracefulRestartTimeS  int `hcl:"graceful_restart_time_s,optional" json:"graceful_restart_time_s" yaml:"graceful_restart_time_s"`

	StepDetector *StepDetectorConfig `hcl:"step_detector,block" json:"step_detector_conf,omitempty" yaml:"step_detector_conf,omitempty"`
}

// StepDetectorConfig configures the RTT step detector used to re-measure
// link quality during discovery.
type StepDetectorConfig struct {
	LowerThreshold int `hcl:"lower_threshold,optional" json:"lower_threshold" yaml:"lower_threshold"`
	UpperThreshold int `hcl:"upper_threshold,optional" json:"upper_threshold" yaml:"upper_threshold"`
	FastWindowSize int `hcl:"fast_window_size,optional" json:"fast_window_size" yaml:"fast_window_size"`
	SlowWindowSize int `hcl:"slow_window_size,optional" json:"slow_window_size" yaml:"slow_window_size"`
}

// MonitorConfig configures the event monitor.
type MonitorConfig struct {
	MaxEventLog int `hcl:"max_event_log,optional" json:"max_event_log" yaml:"max_event_log"`
}

// LinkMonitorConfig configures link-flap damping and the interface pattern
// sets consumed by the link monitor.
type LinkMonitorConfig struct {
	LinkflapInitialBackoffMs int `hcl:"linkflap_initial_backoff_ms,optional" json:"linkflap_initial_backoff_ms" yaml:"linkflap_initial_backoff_ms"`
	LinkflapMaxBackoffMs     int `hcl:"linkflap_max_backoff_ms,optional" json:"linkflap_max_backoff_ms" yaml:"linkflap_max_backoff_ms"`

	IncludeInterfaceRegexes      []string `hcl:"include_interface_regexes,optional" json:"include_interface_regexes,omitempty" yaml:"include_interface_regexes,omitempty"`
	ExcludeInterfaceRegexes      []string `hcl:"exclude_interface_regexes,optional" json:"exclude_interface_regexes,omitempty" yaml:"exclude_interface_regexes,omitempty"`
	RedistributeInterfaceRegexes []string `hcl:"redistribute_interface_regexes,optional" json:"redistribute_interface_regexes,omitempty" yaml:"redistribute_interface_regexes,omitempty"`
}

// PrefixAllocationConfig configures automatic prefix allocation.
type PrefixAllocationConfig struct {
	PrefixAllocationMode string `hcl:"prefix_allocation_mode,optional" json:"prefix_allocation_mode" yaml:"prefix_allocation_mode"`
	SeedPrefix           string `hcl:"seed_prefix,optional" json:"seed_prefix,omitempty" yaml:"seed_prefix,omitempty"`
	AllocatePrefixLen    int    `hcl:"allocate_prefix_len,optional" json:"allocate_prefix_len,omitempty" yaml:"allocate_prefix_len,omitempty"`
}

// BgpConfig configures the BGP interop session.
type BgpConfig struct {
	RouterID  string          `hcl:"router_id,optional" json:"router_id,omitempty" yaml:"router_id,omitempty"`
	LocalAs   int             `hcl:"local_as,optional" json:"local_as,omitempty" yaml:"local_as,omitempty"`
	HoldTimeS int             `hcl:"hold_time_s,optional" json:"hold_time_s,omitempty" yaml:"hold_time_s,omitempty"`
	Peers     []BgpPeerConfig `hcl:"peer,block" json:"peers,omitempty" yaml:"peers,omitempty"`
}

// BgpPeerConfig declares a single BGP peer.
type BgpPeerConfig struct {
	PeerAddr string `hcl:"peer_addr,label" json:"peer_addr" yaml:"peer_addr"`
	RemoteAs int    `hcl:"remote_as,optional" json:"remote_as,omitempty" yaml:"remote_as,omitempty"`
}

// BgpTranslationConfig controls how BGP routes are translated into
// link-state advertisements and back.
type BgpTranslationConfig struct {
	DisableLegacyTranslation bool `hcl:"disable_legacy_translation,optional" json:"disable_legacy_translation" yaml:"disable_legacy_translation"`
}

// WatchdogConfig configures the health watchdog.
type WatchdogConfig struct {
	IntervalS      int `hcl:"interval_s,optional" json:"interval_s" yaml:"interval_s"`
	ThreadTimeoutS int `hcl:"thread_timeout_s,optional" json:"thread_timeout_s" yaml:"thread_timeout_s"`
	MaxMemoryMb    int `hcl:"max_memory_mb,optional" json:"max_memory_mb" yaml:"max_memory_mb"`
}
