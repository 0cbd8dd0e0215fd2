package fractal

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfsf/pkg/errors"
)

const (
	// DefaultMaxDepth bounds recursion when no depth is configured.
	DefaultMaxDepth = 12

	// DefaultMaxPairs bounds the number of emitted pairs. Branching factor
	// two at depth 20 already yields a million leaves.
	DefaultMaxPairs = 1_000_000
)

// Policy decides what happens when a walk reaches a definition that is
// already on the current path.
type Policy string

const (
	// PolicyStrict stops at the first re-entry of a definition.
	PolicyStrict Policy = "strict"
	// PolicyBounded allows re-entry; depth and range guards still apply.
	PolicyBounded Policy = "bounded"
)

// ValidPolicies is the set of supported cycle policies.
var ValidPolicies = map[Policy]bool{
	PolicyStrict:  true,
	PolicyBounded: true,
}

// ParsePolicy converts a flag or config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !ValidPolicies[p] {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid policy: %q (must be one of: strict, bounded)", s)
	}
	return p, nil
}

// Options configures an Expander. The zero value is usable: every unset
// field falls back to its default.
type Options struct {
	// MaxDepth is the deepest nesting level a FRACTAL branch may enter.
	// The root definition is depth 0.
	MaxDepth int
	// MaxPairs aborts expansion with LIMIT_EXCEEDED once exceeded.
	MaxPairs int
	// Policy is the cycle policy; defaults to PolicyStrict.
	Policy Policy
	// Logger receives cutoff events at debug level.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxPairs <= 0 {
		o.MaxPairs = DefaultMaxPairs
	}
	if o.Policy == "" {
		o.Policy = PolicyStrict
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
