package feature

import "testing"

func TestBareVersionMatchesAllPatches(t *testing.T) {
	fs := New([]Entry{
		{Name: "independentLiquidGravity", Versions: []Condition{{"1.14"}}},
	}, ParseVersion("1.14.4"))

	if !fs.Enabled("independentLiquidGravity") {
		t.Fatal("bare majorVersion predicate should match every 1.14.x patch")
	}
}

func TestEqualityOperatorRejectsPatchVersion(t *testing.T) {
	fs := New([]Entry{
		{Name: "f", Versions: []Condition{{"== 1.14"}}},
	}, ParseVersion("1.14.1"))

	if fs.Enabled("f") {
		t.Fatal(`"== 1.14" must not match "1.14.1"`)
	}

	fs2 := New([]Entry{
		{Name: "f", Versions: []Condition{{"== 1.14"}}},
	}, ParseVersion("1.14"))
	if !fs2.Enabled("f") {
		t.Fatal(`"== 1.14" must match exact "1.14"`)
	}
}

func TestConditionIsAndVersionsAreOr(t *testing.T) {
	fs := New([]Entry{
		{
			Name: "f",
			Versions: []Condition{
				{">= 1.14", "< 1.16"},
				{"== 1.18"},
			},
		},
	}, ParseVersion("1.18"))
	if !fs.Enabled("f") {
		t.Fatal("second disjunct should have matched 1.18")
	}

	fs2 := New([]Entry{
		{
			Name: "f",
			Versions: []Condition{
				{">= 1.14", "< 1.16"},
			},
		},
	}, ParseVersion("1.17"))
	if fs2.Enabled("f") {
		t.Fatal("1.17 fails the < 1.16 conjunct, condition should be false")
	}
}

func TestUnknownFeatureNeverEnabled(t *testing.T) {
	fs := New(nil, ParseVersion("1.20.1"))
	if fs.Enabled("doesNotExist") {
		t.Fatal("unknown feature must never be enabled")
	}
}

func TestMajorVersion(t *testing.T) {
	if got := ParseVersion("1.14.4").MajorVersion(); got != "1.14" {
		t.Fatalf("MajorVersion() = %q, want 1.14", got)
	}
	if got := ParseVersion("1.14").MajorVersion(); got != "1.14" {
		t.Fatalf("MajorVersion() = %q, want 1.14", got)
	}
}

func TestComparisonOperators(t *testing.T) {
	v := ParseVersion("1.16.5")
	if !v.GT("1.16.4") || v.GT("1.16.5") {
		t.Fatal("GT misbehaved")
	}
	if !v.GE("1.16.5") || v.GE("1.16.6") {
		t.Fatal("GE misbehaved")
	}
	if !v.LT("1.17") || v.LT("1.16.5") {
		t.Fatal("LT misbehaved")
	}
	if !v.EQ("1.16.5") || v.EQ("1.16") {
		t.Fatal("EQ misbehaved")
	}
}
