// Package powbench computes integer powers and verifies them against the
// algebraic laws of exponentiation.
//
// # Overview
//
// The core is a single pure function:
//
//	powbench.Power(2, 3)   // 8
//	powbench.Power(5, 0)   // 1
//	powbench.Power(2, -1)  // NaN
//	powbench.Power(2, 1.5) // NaN
//
// The exponent must be a non-negative integer. Negative, fractional, NaN and
// infinite exponents never panic and never return an error; they yield NaN,
// the invalid-result marker. Test for it with IsInvalid:
//
//	if powbench.IsInvalid(powbench.Power(base, exp)) {
//	    // exponent outside the supported domain
//	}
//
// Callers that prefer an error return use PowerChecked:
//
//	v, err := powbench.PowerChecked(2, -1)
//	if errors.Is(err, powbench.ErrInvalidExponent) {
//	    ...
//	}
//
// # Laws
//
// VerifyLaws checks a power implementation over a grid of bases and
// exponents and returns a LawVerified proof:
//
//	proof, err := powbench.VerifyLaws(powbench.DefaultLawConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	powbench.Register(proof)
//
// The default laws:
//
//   - ZeroExponent:           b^0 = 1
//   - Identity:               b^1 = b
//   - RepeatedMultiplication: b^n = b·b·…·b (n factors)
//   - ProductOfPowers:        b^(n+1) = b^n · b
//   - MatchesStdlib:          b^n = math.Pow(b, n)
//   - RejectsNegative:        b^(-n-1) is NaN
//   - RejectsFractional:      b^(n+½) is NaN
//
// Proofs live in a LawRegistry. Require fails unless a function has a proof
// covering every named law.
//
// # Testing
//
// Assertion helpers express the contract by example:
//
//	func TestPower(t *testing.T) {
//	    powbench.AssertCubes(t, 1, 5)   // "2 to the power 3 is 8", ...
//	    powbench.AssertInvalid(t, 2, -1)
//	    powbench.AssertLaws(t, powbench.DefaultLawConfig())
//	}
//
// # Command line
//
// cmd/powbench wraps the package:
//
//	powbench eval 2 10
//	powbench eval --strict 2 1.5
//	powbench laws --max-exponent 20
package powbench
