package powbench

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// PowerFunc is the signature of a power implementation under verification.
type PowerFunc func(base, exponent float64) float64

// ErrLawViolated wraps every failure reported by VerifyLaws.
var ErrLawViolated = errors.New("law violated")

// stdlibTolerance is the relative error allowed against math.Pow.
const stdlibTolerance = 1e-12

// Law is a named algebraic property checked for one (base, n) sample,
// where n is a non-negative integer exponent.
type Law struct {
	Name  string
	Check func(fn PowerFunc, base float64, n int) error

	// IgnoresExponent marks laws that do not depend on n. They are checked
	// once per base with n = 0.
	IgnoresExponent bool
}

// LawVerified records which laws a power implementation satisfied and on
// which samples.
type LawVerified struct {
	Function    string            // Registry key, e.g. "powbench.Power"
	Laws        []string          // Names of laws that passed
	Bases       []float64         // Sampled bases
	MaxExponent int               // Exponents 0..MaxExponent were sampled
	Samples     int               // Distinct (law, base, exponent) checks
	TestedAt    time.Time         // When verification finished
	Properties  map[string]string // Additional metadata
}

// Has reports whether the proof covers the named law.
func (v LawVerified) Has(law string) bool {
	return contains(v.Laws, law)
}

// LawConfig controls a verification run.
type LawConfig struct {
	Function    string
	Func        PowerFunc
	Laws        []Law
	Bases       []float64
	MaxExponent int
}

// DefaultLawConfig verifies Power against DefaultLaws on DefaultSampleBases
// with exponents 0 through 10.
func DefaultLawConfig() LawConfig {
	return LawConfig{
		Function:    "powbench.Power",
		Func:        Power,
		Laws:        DefaultLaws(),
		Bases:       DefaultSampleBases(),
		MaxExponent: 10,
	}
}

// DefaultSampleBases covers negatives, fractions, zero and one.
func DefaultSampleBases() []float64 {
	return []float64{-3, -2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2, 3, 4, 5, 10}
}

// DefaultLaws returns the laws every power implementation in this package
// must satisfy.
func DefaultLaws() []Law {
	return []Law{
		{Name: "ZeroExponent", Check: checkZeroExponent, IgnoresExponent: true},
		{Name: "Identity", Check: checkIdentity, IgnoresExponent: true},
		{Name: "RepeatedMultiplication", Check: checkRepeatedMultiplication},
		{Name: "ProductOfPowers", Check: checkProductOfPowers},
		{Name: "MatchesStdlib", Check: checkMatchesStdlib},
		{Name: "RejectsNegative", Check: checkRejectsNegative},
		{Name: "RejectsFractional", Check: checkRejectsFractional},
	}
}

// VerifyLaws checks every law in cfg on every (base, exponent) sample and
// returns a proof. The first violation aborts the run with an error
// wrapping ErrLawViolated.
//
// MaxExponent must stay below MaxLinearExponent: ProductOfPowers samples
// n+1, and exact repeated multiplication only holds up to that limit.
func VerifyLaws(cfg LawConfig) (LawVerified, error) {
	if cfg.Func == nil {
		return LawVerified{}, fmt.Errorf("verify %s: no function to verify", cfg.Function)
	}
	if len(cfg.Laws) == 0 {
		return LawVerified{}, fmt.Errorf("verify %s: no laws configured", cfg.Function)
	}
	if len(cfg.Bases) == 0 {
		return LawVerified{}, fmt.Errorf("verify %s: no sample bases", cfg.Function)
	}
	if cfg.MaxExponent < 0 {
		return LawVerified{}, fmt.Errorf("verify %s: negative max exponent %d", cfg.Function, cfg.MaxExponent)
	}
	if cfg.MaxExponent >= MaxLinearExponent {
		return LawVerified{}, fmt.Errorf("verify %s: max exponent %d must be below %d",
			cfg.Function, cfg.MaxExponent, MaxLinearExponent)
	}

	proof := LawVerified{
		Function:    cfg.Function,
		Bases:       append([]float64(nil), cfg.Bases...),
		MaxExponent: cfg.MaxExponent,
		Properties: map[string]string{
			"tolerance": fmt.Sprintf("%g", stdlibTolerance),
		},
	}

	for _, law := range cfg.Laws {
		maxN := cfg.MaxExponent
		if law.IgnoresExponent {
			maxN = 0
		}
		for _, base := range cfg.Bases {
			for n := 0; n <= maxN; n++ {
				if err := law.Check(cfg.Func, base, n); err != nil {
					return LawVerified{}, fmt.Errorf("%s: %s at base=%g exponent=%d: %w: %v",
						cfg.Function, law.Name, base, n, ErrLawViolated, err)
				}
				proof.Samples++
			}
		}
		proof.Laws = append(proof.Laws, law.Name)
	}

	proof.TestedAt = time.Now()
	return proof, nil
}

func checkZeroExponent(fn PowerFunc, base float64, _ int) error {
	if got := fn(base, 0); got != 1 {
		return fmt.Errorf("got %g, want 1", got)
	}
	return nil
}

func checkIdentity(fn PowerFunc, base float64, _ int) error {
	if got := fn(base, 1); !sameFloat(got, base) {
		return fmt.Errorf("got %g, want %g", got, base)
	}
	return nil
}

func checkRepeatedMultiplication(fn PowerFunc, base float64, n int) error {
	want := 1.0
	for i := 0; i < n; i++ {
		want *= base
	}
	if got := fn(base, float64(n)); !sameFloat(got, want) {
		return fmt.Errorf("got %g, want %g", got, want)
	}
	return nil
}

func checkProductOfPowers(fn PowerFunc, base float64, n int) error {
	want := fn(base, float64(n)) * base
	if got := fn(base, float64(n+1)); !sameFloat(got, want) {
		return fmt.Errorf("got %g, want %g", got, want)
	}
	return nil
}

func checkMatchesStdlib(fn PowerFunc, base float64, n int) error {
	want := math.Pow(base, float64(n))
	got := fn(base, float64(n))
	if sameFloat(got, want) {
		return nil
	}
	if math.Abs(got-want) > stdlibTolerance*math.Abs(want) {
		return fmt.Errorf("got %g, math.Pow gives %g", got, want)
	}
	return nil
}

func checkRejectsNegative(fn PowerFunc, base float64, n int) error {
	exp := -float64(n) - 1
	if got := fn(base, exp); !IsInvalid(got) {
		return fmt.Errorf("exponent %g gave %g, want NaN", exp, got)
	}
	return nil
}

func checkRejectsFractional(fn PowerFunc, base float64, n int) error {
	exp := float64(n) + 0.5
	if got := fn(base, exp); !IsInvalid(got) {
		return fmt.Errorf("exponent %g gave %g, want NaN", exp, got)
	}
	return nil
}

// sameFloat is exact equality that also treats NaN as equal to NaN.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// LawRegistry stores proofs for verified power implementations.
type LawRegistry struct {
	mu       sync.RWMutex
	verified map[string]LawVerified
}

// NewLawRegistry creates a registry with no proofs.
func NewLawRegistry() *LawRegistry {
	return &LawRegistry{
		verified: make(map[string]LawVerified),
	}
}

// Register stores a proof, replacing any earlier proof for the same function.
func (r *LawRegistry) Register(v LawVerified) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.verified[v.Function] = v
}

// IsVerified returns the proof registered for function, if any.
func (r *LawRegistry) IsVerified(function string) (LawVerified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.verified[function]
	return v, ok
}

// Require returns an error unless function has a proof covering every
// required law.
func (r *LawRegistry) Require(function string, requiredLaws []string) error {
	verified, ok := r.IsVerified(function)
	if !ok {
		return fmt.Errorf("function %s not in verified registry (did VerifyLaws pass?)", function)
	}

	for _, required := range requiredLaws {
		if !verified.Has(required) {
			return fmt.Errorf("function %s missing required law: %s (has: %v)",
				function, required, verified.Laws)
		}
	}

	return nil
}

// contains checks if slice contains string.
func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// Global registry (optional convenience)
var globalRegistry = NewLawRegistry()

// Register adds to the global registry.
func Register(v LawVerified) {
	globalRegistry.Register(v)
}

// IsVerified looks up a proof in the global registry.
func IsVerified(function string) (LawVerified, bool) {
	return globalRegistry.IsVerified(function)
}

// Require checks against the global registry.
func Require(function string, requiredLaws []string) error {
	return globalRegistry.Require(function, requiredLaws)
}
