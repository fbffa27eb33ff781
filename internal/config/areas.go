package config

import (
	"fmt"
	"regexp"
)

// MatchKind selects which of an area's matchers a query runs against.
type MatchKind int

const (
	MatchNeighbor MatchKind = iota
	MatchInterface
)

func (k MatchKind) String() string {
	if k == MatchNeighbor {
		return "neighbor"
	}
	return "interface"
}

// PatternSet is a list of patterns compiled once into anchored,
// case-insensitive matchers. A nil PatternSet is the empty set and never
// matches. Once compiled it is immutable and safe for concurrent use.
type PatternSet struct {
	patterns []string
	compiled []*regexp.Regexp
}

// CompilePatterns builds a PatternSet from the given patterns. An empty list
// yields a nil set. Matching is anchored: the whole candidate must be
// consumed by a pattern, substrings never match.
func CompilePatterns(patterns []string) (*PatternSet, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	s := &PatternSet{
		patterns: append([]string(nil), patterns...),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		s.compiled = append(s.compiled, re)
	}
	return s, nil
}

// Match reports whether candidate fully matches at least one pattern.
func (s *PatternSet) Match(candidate string) bool {
	if s == nil {
		return false
	}
	for _, re := range s.compiled {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the source pattern list.
func (s *PatternSet) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}

// Area is a configured partition of the routing topology. At least one of its
// two matchers is non-empty.
type Area struct {
	id         string
	neighbors  *PatternSet
	interfaces *PatternSet
}

// ID returns the area identifier.
func (a *Area) ID() string { return a.id }

// Matches reports whether candidate belongs to this area for the given kind.
// An area with an empty matcher for that kind never matches on that kind.
func (a *Area) Matches(candidate string, kind MatchKind) bool {
	if kind == MatchNeighbor {
		return a.neighbors.Match(candidate)
	}
	return a.interfaces.Match(candidate)
}

// NeighborPatterns returns the area's neighbor pattern list.
func (a *Area) NeighborPatterns() []string { return a.neighbors.Patterns() }

// InterfacePatterns returns the area's interface pattern list.
func (a *Area) InterfacePatterns() []string { return a.interfaces.Patterns() }

// AreaRegistry owns the mapping from area identifier to Area. It is populated
// during validation and read-only afterwards; concurrent queries need no
// locking.
type AreaRegistry struct {
	areas map[string]*Area
	ids   []string
}

// NewAreaRegistry returns an empty registry.
func NewAreaRegistry() *AreaRegistry {
	return &AreaRegistry{areas: make(map[string]*Area)}
}

// AddArea compiles the pattern lists for areaID and registers the area.
func (r *AreaRegistry) AddArea(areaID string, neighborPatterns, interfacePatterns []string) error {
	if areaID == "" {
		return newError(KindInvalidArgument, "areas", "area_id must not be empty")
	}
	if _, ok := r.areas[areaID]; ok {
		return newError(KindDuplicateArea, "areas",
			"duplicate area config: area_id %s", areaID)
	}
	if len(neighborPatterns) == 0 && len(interfacePatterns) == 0 {
		return newError(KindEmptyAreaRule, fmt.Sprintf("areas[%s]", areaID),
			"at least one non-empty pattern list for neighbor or interface required")
	}

	neighbors, err := CompilePatterns(neighborPatterns)
	if err != nil {
		return newError(KindPatternCompile, fmt.Sprintf("areas[%s].neighbor_regexes", areaID),
			"failed to compile neighbor %v", err)
	}
	interfaces, err := CompilePatterns(interfacePatterns)
	if err != nil {
		return newError(KindPatternCompile, fmt.Sprintf("areas[%s].interface_regexes", areaID),
			"failed to compile interface %v", err)
	}

	r.areas[areaID] = &Area{id: areaID, neighbors: neighbors, interfaces: interfaces}
	r.ids = append(r.ids, areaID)
	return nil
}

// Matches reports whether candidate belongs to areaID for the given kind.
// Unknown areas never match.
func (r *AreaRegistry) Matches(areaID, candidate string, kind MatchKind) bool {
	a, ok := r.areas[areaID]
	if !ok {
		return false
	}
	return a.Matches(candidate, kind)
}

// Area returns the registered area for id.
func (r *AreaRegistry) Area(id string) (*Area, bool) {
	a, ok := r.areas[id]
	return a, ok
}

// IDs returns the area identifiers in registration order.
func (r *AreaRegistry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Len returns the number of registered areas.
func (r *AreaRegistry) Len() int { return len(r.areas) }
