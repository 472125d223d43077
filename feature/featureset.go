// Package feature resolves named, version-gated behavior flags against a
// world version, per the {name, versions} grammar the reference client's
// features.json uses.
package feature

import (
	"strconv"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"
)

// Entry is one named feature and the version conditions that enable it.
// Versions is OR-reduced: the feature is enabled iff at least one
// Condition is entirely true.
type Entry struct {
	Name     string
	Versions []Condition
}

// Condition is an AND-list of predicate strings. A bare majorVersion
// string or a single "pred param" predicate is represented as a
// one-element Condition.
type Condition []string

// FeatureSet is built once per (features, version) pair and is
// thereafter immutable and safe for concurrent reads.
type FeatureSet struct {
	version Version
	enabled map[string]bool

	mu    sync.Mutex
	cache map[uint64]bool
}

// New builds a FeatureSet, evaluating every entry's predicate grammar
// against version up front.
func New(entries []Entry, version Version) *FeatureSet {
	fs := &FeatureSet{
		version: version,
		enabled: make(map[string]bool, len(entries)),
		cache:   make(map[uint64]bool),
	}
	for _, e := range entries {
		fs.enabled[e.Name] = fs.evaluate(e.Versions)
	}
	return fs
}

// FeatureList is the public constructor named to match the reference
// simulator's external surface; it is New under another name.
func FeatureList(entries []Entry, version Version) *FeatureSet {
	return New(entries, version)
}

// Enabled reports whether the named feature is active. An unknown name is
// never enabled.
func (fs *FeatureSet) Enabled(name string) bool {
	return fs.enabled[name]
}

func (fs *FeatureSet) evaluate(conditions []Condition) bool {
	for _, cond := range conditions {
		if fs.conditionTrue(cond) {
			return true
		}
	}
	return false
}

func (fs *FeatureSet) conditionTrue(cond Condition) bool {
	for _, predicate := range cond {
		if !fs.predicateTrue(predicate) {
			return false
		}
	}
	return true
}

// predicateTrue evaluates a single "pred param" string (or a bare
// majorVersion string) against fs.version, memoizing by a hash of the
// predicate and the version so a predicate string shared by several
// entries is parsed once while New evaluates them. Enabled does not call
// this; it reads the map New filled in.
func (fs *FeatureSet) predicateTrue(predicate string) bool {
	key := xxh3.HashString(predicate + "\x00" + fs.version.String())

	fs.mu.Lock()
	if v, ok := fs.cache[key]; ok {
		fs.mu.Unlock()
		return v
	}
	fs.mu.Unlock()

	result := fs.evalPredicate(predicate)

	fs.mu.Lock()
	fs.cache[key] = result
	fs.mu.Unlock()

	return result
}

func (fs *FeatureSet) evalPredicate(predicate string) bool {
	predicate = strings.TrimSpace(predicate)

	if op, rest, ok := splitOperator(predicate); ok {
		operand := strings.TrimSpace(rest)
		switch op {
		case ">":
			return fs.version.GT(operand)
		case ">=":
			return fs.version.GE(operand)
		case "<":
			return fs.version.LT(operand)
		case "<=":
			return fs.version.LE(operand)
		case "==":
			return fs.version.EQ(operand)
		}
		return false
	}

	// Bare majorVersion string: matches iff equal to the version's
	// majorVersion, so "1.14" matches every 1.14.x.
	return fs.version.MajorVersion() == predicate
}

func splitOperator(predicate string) (op, rest string, ok bool) {
	for _, candidate := range []string{">=", "<=", "==", ">", "<"} {
		if strings.HasPrefix(predicate, candidate) {
			return candidate, predicate[len(candidate):], true
		}
	}
	return "", predicate, false
}

// ParseMajorVersionNumber is a convenience used by hosts constructing a
// Version from a dotted major string such as "1.14", returning (1, 14).
func ParseMajorVersionNumber(major string) (int, int) {
	segs := strings.SplitN(major, ".", 2)
	a, _ := strconv.Atoi(segs[0])
	b := 0
	if len(segs) > 1 {
		b, _ = strconv.Atoi(segs[1])
	}
	return a, b
}
