package config

import "net/netip"

// PrefixAllocationParams are the derived prefix-allocation parameters: the
// seed network every allocated prefix is carved out of, and the fixed length
// of each allocation. Immutable once computed.
type PrefixAllocationParams struct {
	SeedNetwork       netip.Prefix
	AllocatePrefixLen int
}

// IsV4 reports whether the seed network is an IPv4 prefix.
func (p PrefixAllocationParams) IsV4() bool {
	return p.SeedNetwork.Addr().Is4()
}

// ComputeAllocationParams validates seedPrefix and allocatePrefixLen and
// derives the allocation parameters. The allocation length must exceed the
// seed prefix length and fit the address family (32 for IPv4, 128 for IPv6).
func ComputeAllocationParams(seedPrefix string, allocatePrefixLen int) (PrefixAllocationParams, error) {
	if seedPrefix == "" || allocatePrefixLen == 0 {
		return PrefixAllocationParams{}, newError(KindInvalidArgument,
			"prefix_allocation_config",
			"seed_prefix and allocate_prefix_len must be filled")
	}

	seed, err := netip.ParsePrefix(seedPrefix)
	if err != nil {
		return PrefixAllocationParams{}, newError(KindMalformedAddress,
			"prefix_allocation_config.seed_prefix",
			"cannot parse prefix %q: %v", seedPrefix, err)
	}

	familyMax := 128
	if seed.Addr().Is4() {
		familyMax = 32
	}
	if allocatePrefixLen <= seed.Bits() || allocatePrefixLen > familyMax {
		return PrefixAllocationParams{}, newError(KindOutOfRange,
			"prefix_allocation_config.allocate_prefix_len",
			"invalid allocate_prefix_len (%d), valid range = (%d, %d]",
			allocatePrefixLen, seed.Bits(), familyMax)
	}

	return PrefixAllocationParams{
		SeedNetwork:       seed.Masked(),
		AllocatePrefixLen: allocatePrefixLen,
	}, nil
}
