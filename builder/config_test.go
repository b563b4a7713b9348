// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpgm/core"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != 7 {
		t.Errorf("default idFn: expected 7, got %d", got)
	}
	if got := newBuilderConfig(WithIDOffset(100)).idFn(3); got != 103 {
		t.Errorf("WithIDOffset: expected 103, got %d", got)
	}
	if got := newBuilderConfig(WithIDScheme(StrideIDFn(1, 10))).idFn(2); got != 21 {
		t.Errorf("StrideIDFn: expected 21, got %d", got)
	}
	if got := newBuilderConfig(WithIDOffset(5), WithDefaultIDs()).idFn(3); got != core.NodeID(3) {
		t.Errorf("WithDefaultIDs override: expected 3, got %d", got)
	}
}

// TestOptionPanics verifies option constructors reject nonsense values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)":    func() { WithIDScheme(nil) },
		"WithRand(nil)":        func() { WithRand(nil) },
		"WithDomainFn(nil)":    func() { WithDomainFn(nil) },
		"ConstantDomainFn(0)":  func() { ConstantDomainFn(0) },
		"UniformDomainFn(3,2)": func() { UniformDomainFn(3, 2) },
		"StrideIDFn(0,0)":      func() { StrideIDFn(0, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestRNGOptions verifies RNG configuration and reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Error("default rng: expected nil")
	}
	exp := rand.New(rand.NewSource(123))
	if newBuilderConfig(WithRand(exp)).rng != exp {
		t.Error("WithRand: rng not installed")
	}

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	if a.Int63() != b.Int63() || a.Int63() != b.Int63() {
		t.Error("WithSeed: streams differ")
	}
}

// TestDomainFnOptions verifies the domain-size generators.
func TestDomainFnOptions(t *testing.T) {
	t.Parallel()

	if k := newBuilderConfig().domainFn(nil); k != DefaultDomainSize {
		t.Errorf("default domainFn: expected %d, got %d", DefaultDomainSize, k)
	}
	if k := newBuilderConfig(WithConstantDomain(5)).domainFn(nil); k != 5 {
		t.Errorf("WithConstantDomain: expected 5, got %d", k)
	}

	uni := newBuilderConfig(WithUniformDomain(2, 4))
	if k := uni.domainFn(nil); k != 2 {
		t.Errorf("UniformDomainFn(nil rng): expected lo=2, got %d", k)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if k := uni.domainFn(rng); k < 2 || k > 4 {
			t.Fatalf("UniformDomainFn: %d not in [2,4]", k)
		}
	}
}
