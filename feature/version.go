package feature

import (
	"strconv"
	"strings"
)

// Version is a semver-like world version string, e.g. "1.20.10". It
// supports the comparison methods FeatureSet needs against a predicate's
// version operand, plus MajorVersion for bare equality checks.
type Version struct {
	raw   string
	parts []int
}

// ParseVersion parses a dotted version string into comparable numeric
// components. Non-numeric trailing garbage is ignored component-wise.
func ParseVersion(s string) Version {
	segs := strings.Split(s, ".")
	parts := make([]int, len(segs))
	for i, seg := range segs {
		n, _ := strconv.Atoi(seg)
		parts[i] = n
	}
	return Version{raw: s, parts: parts}
}

// MajorVersion returns the first two dotted components (e.g. "1.14" out
// of "1.14.4"), or the whole string if it has fewer than two components.
// A bare "1.14" feature-version entry matches iff this equals it.
func (v Version) MajorVersion() string {
	segs := strings.Split(v.raw, ".")
	if len(segs) <= 2 {
		return v.raw
	}
	return strings.Join(segs[:2], ".")
}

func (v Version) String() string { return v.raw }

// compare returns -1, 0 or 1 comparing v against other, component-wise,
// with missing trailing components treated as 0 (so "1.14" == "1.14.0").
func (v Version) compare(other Version) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v Version) GT(other string) bool { return v.compare(ParseVersion(other)) > 0 }
func (v Version) GE(other string) bool { return v.compare(ParseVersion(other)) >= 0 }
func (v Version) LT(other string) bool { return v.compare(ParseVersion(other)) < 0 }
func (v Version) LE(other string) bool { return v.compare(ParseVersion(other)) <= 0 }
func (v Version) EQ(other string) bool { return v.compare(ParseVersion(other)) == 0 }
