package config

import "encoding/json"

// Default values injected for absent subsystem blocks. They match the timers
// the protocol components are tuned for; validation runs on the defaulted
// document so every ValidatedConfig is complete.
const (
	defaultNeighborDiscoveryPort = 6666
	defaultHelloTimeS            = 20
	defaultFastinitHelloTimeMs   = 500
	defaultKeepaliveTimeS        = 2
	defaultHoldTimeS             = 10
	defaultGracefulRestartTimeS  = 30

	defaultStepLowerThreshold = 2
	defaultStepUpperThreshold = 5
	defaultStepFastWindowSize = 10
	defaultStepSlowWindowSize = 60

	defaultMaxEventLog = 100

	defaultLinkflapInitialBackoffMs = 1000
	defaultLinkflapMaxBackoffMs     = 60000
)

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	// JSON round-trip handles all nested slices and pointers safely.
	b, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	var clone Config
	if err := json.Unmarshal(b, &clone); err != nil {
		return nil
	}
	return &clone
}

// applyDefaults fills absent subsystem blocks and enum zero values. The
// default area is synthesized separately during area population so its
// injection shows up in the serialized running config.
func (c *Config) applyDefaults() {
	if c.PrefixForwardingType == "" {
		c.PrefixForwardingType = ForwardingTypeIP
	}
	if c.PrefixForwardingAlgorithm == "" {
		c.PrefixForwardingAlgorithm = ForwardingAlgorithmSpEcmp
	}

	if c.Kvstore == nil {
		c.Kvstore = &KvstoreConfig{}
	}

	if c.Spark == nil {
		c.Spark = &SparkConfig{
			NeighborDiscoveryPort: defaultNeighborDiscoveryPort,
			HelloTimeS:            defaultHelloTimeS,
			FastinitHelloTimeMs:   defaultFastinitHelloTimeMs,
			KeepaliveTimeS:        defaultKeepaliveTimeS,
			HoldTimeS:             defaultHoldTimeS,
			GracefulRestartTimeS:  defaultGracefulRestartTimeS,
		}
	}
	if c.Spark.StepDetector == nil {
		c.Spark.StepDetector = &StepDetectorConfig{
			LowerThreshold: defaultStepLowerThreshold,
			UpperThreshold: defaultStepUpperThreshold,
			FastWindowSize: defaultStepFastWindowSize,
			SlowWindowSize: defaultStepSlowWindowSize,
		}
	}

	if c.Monitor == nil {
		c.Monitor = &MonitorConfig{MaxEventLog: defaultMaxEventLog}
	}

	if c.LinkMonitor == nil {
		c.LinkMonitor = &LinkMonitorConfig{
			LinkflapInitialBackoffMs: defaultLinkflapInitialBackoffMs,
			LinkflapMaxBackoffMs:     defaultLinkflapMaxBackoffMs,
		}
	}
}
