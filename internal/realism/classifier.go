package realism

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Classifier turns resolution text into a Result. It holds no state between
// calls beyond its rules and random source.
type Classifier struct {
	rules []Rule
	rng   *rand.Rand // nil uses the global source
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRand sets the random source used for pattern-matched draws.
func WithRand(r *rand.Rand) Option {
	return func(c *Classifier) { c.rng = r }
}

// WithRules replaces the rule list. The list should end with a rule that
// always applies; otherwise unmatched text uses DefaultRule.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) { c.rules = rules }
}

// NewClassifier creates a Classifier using DefaultRules.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{rules: DefaultRules()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var defaultClassifier = NewClassifier()

// Classify classifies text with the default rules and the global random source.
func Classify(text string) Result {
	return defaultClassifier.Classify(text)
}

// Classify evaluates the rules against text and selects a payload.
// It never fails; text that no rule claims, or a decision naming a tier
// without responses, resolves through DefaultRule.
func (c *Classifier) Classify(text string) Result {
	d, name, ok := RunRules(c.rules, text)
	if !ok || len(responses[d.Tier]) == 0 {
		fallback := &DefaultRule{}
		d, _ = fallback.Decide(text)
		name = fallback.Name()
	}

	res := Result{
		ID:   uuid.New(),
		Tier: d.Tier,
		Rule: name,
	}
	if d.Payload == Draw {
		res.Payload, res.Index = payloadAt(d.Tier, c.intN(len(responses[d.Tier])))
		return res
	}
	res.Payload, res.Index = payloadAt(d.Tier, d.Payload)
	res.Pinned = true
	return res
}

func (c *Classifier) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}
