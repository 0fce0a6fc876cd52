package observability

import (
	"time"

	catrate "github.com/joeycumines/go-catrate"
)

// LimitAction is the configured response when a runtime limit is hit.
type LimitAction string

const (
	ActionReject  LimitAction = "reject"
	ActionQueue   LimitAction = "queue"
	ActionDegrade LimitAction = "degrade"
)

// LimitConfig is one `runtime::limits.<resource>` entry from spec.md §6.
// All runtime-scope config is hot_reloadable=true by contract; this kernel
// does not load it from disk (that is the external config loader's job) but
// models the typed shape a hot-reloading loader deserializes into.
type LimitConfig struct {
	Limit         int64
	Action        LimitAction
	QueueCapacity int64 // meaningful only when Action == ActionQueue
}

// RuntimeLimits bundles the three enumerated limit scopes.
type RuntimeLimits struct {
	Connections LimitConfig
	MemoryBytes LimitConfig
	FileHandles LimitConfig
}

// SLOAction is one of the four enumerated SLO policy actions.
type SLOAction string

const (
	ActionRateLimit   SLOAction = "rate_limit"
	ActionCircuitBreak SLOAction = "circuit_break"
	ActionRetry       SLOAction = "retry"
	ActionDeactivate  SLOAction = "deactivate"
)

// SLORule is one row of `slo.policy_table`: an activate/deactivate percent
// pair with hysteresis, and the action to take while active.
type SLORule struct {
	Name              string
	ActivatePercent   float64
	DeactivatePercent float64
	Action            SLOAction
}

// SLOPolicyTable evaluates a set of rules against a live percentage metric
// (e.g. error rate), applying activate/deactivate hysteresis so a value
// oscillating around the threshold doesn't flap the action on and off.
type SLOPolicyTable struct {
	Rules  []SLORule
	active map[string]bool
}

// NewSLOPolicyTable constructs a table with every rule inactive.
func NewSLOPolicyTable(rules []SLORule) *SLOPolicyTable {
	return &SLOPolicyTable{Rules: rules, active: make(map[string]bool, len(rules))}
}

// Evaluate feeds the current percent value through every rule and returns
// the actions that are active after this observation.
func (t *SLOPolicyTable) Evaluate(percent float64) []SLORule {
	var triggered []SLORule
	for _, r := range t.Rules {
		wasActive := t.active[r.Name]
		switch {
		case !wasActive && percent >= r.ActivatePercent:
			t.active[r.Name] = true
		case wasActive && percent <= r.DeactivatePercent:
			t.active[r.Name] = false
		}
		if t.active[r.Name] {
			triggered = append(triggered, r)
		}
	}
	return triggered
}

// RateLimitEnforcer realizes the `rate_limit` SLO action using
// github.com/joeycumines/go-catrate's sliding-window limiter: once a rule
// activates, the enforcer is consulted per category (e.g. route or peer) to
// decide whether to admit the operation or emit a RetryAfter advice.
type RateLimitEnforcer struct {
	limiter *catrate.Limiter
}

// NewRateLimitEnforcer builds an enforcer with the given sliding-window
// rates, e.g. map[time.Duration]int{time.Second: 50, time.Minute: 2000}.
func NewRateLimitEnforcer(rates map[time.Duration]int) *RateLimitEnforcer {
	return &RateLimitEnforcer{limiter: catrate.NewLimiter(rates)}
}

// Allow reports whether category may proceed now, and if not, the instant
// at which it next may — directly usable as the At of a ready.RetryAdvice
// of kind ready.RetryAtInstant.
func (e *RateLimitEnforcer) Allow(category any) (retryAt time.Time, ok bool) {
	return e.limiter.Allow(category)
}
