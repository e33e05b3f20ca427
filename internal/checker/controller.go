// Package checker holds the view state behind the resolution checker: the
// text being edited and the most recent verdict.
package checker

import (
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/realitycheck/internal/realism"
)

// Classifier turns resolution text into a verdict.
type Classifier interface {
	Classify(text string) realism.Result
}

// Controller owns the input text and the last result. It is driven from a
// single event loop and is not safe for concurrent use.
type Controller struct {
	classifier Classifier
	logger     *zap.Logger
	input      string
	last       *realism.Result
	submits    int
}

// New creates a Controller. A nil classifier uses realism's default rules;
// a nil logger discards output.
func New(classifier Classifier, logger *zap.Logger) *Controller {
	if classifier == nil {
		classifier = realism.NewClassifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		classifier: classifier,
		logger:     logger,
	}
}

// SetInput replaces the input text.
func (c *Controller) SetInput(text string) {
	c.input = text
}

// Input returns the current input text.
func (c *Controller) Input() string {
	return c.input
}

// Reset clears the input text. The last result is kept.
func (c *Controller) Reset() {
	c.input = ""
}

// Submit classifies the trimmed input and stores the result.
// Blank input is ignored and returns false.
func (c *Controller) Submit() bool {
	text := strings.TrimSpace(c.input)
	if text == "" {
		return false
	}

	res := c.classifier.Classify(text)
	c.last = &res
	c.submits++

	c.logger.Debug("resolution classified",
		zap.String("id", res.ID.String()),
		zap.String("tier", string(res.Tier)),
		zap.String("rule", res.Rule),
		zap.Int("index", res.Index),
		zap.Bool("pinned", res.Pinned),
		zap.Int("submits", c.submits),
	)
	return true
}

// Last returns the most recent result, if any.
func (c *Controller) Last() (realism.Result, bool) {
	if c.last == nil {
		return realism.Result{}, false
	}
	return *c.last, true
}

// Submits returns how many submissions produced a result.
func (c *Controller) Submits() int {
	return c.submits
}
