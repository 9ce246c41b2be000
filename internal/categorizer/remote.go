package categorizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// BatchLabeler is the remote text-classification collaborator: one
// request per batch, one label per description, in order. Any error
// (network, timeout, malformed response) stands for "no usable
// result" and the caller degrades to the rule-based path.
type BatchLabeler interface {
	Label(ctx context.Context, descriptions []string) ([]string, error)
}

// Remote classifies through an external service with a mandatory
// rule-based fallback. Remote results are all-or-nothing: on any
// failure, including a length mismatch, the entire batch is
// re-classified locally so that partial remote output never mixes
// with fallback output.
type Remote struct {
	labeler  BatchLabeler
	fallback *RuleBased
	timeout  time.Duration
	log      zerolog.Logger
}

// NewRemote creates a remote classifier. The rule-based fallback is
// required at construction; a Remote without one is unrepresentable.
func NewRemote(labeler BatchLabeler, fallback *RuleBased, timeout time.Duration, log zerolog.Logger) (*Remote, error) {
	if labeler == nil {
		return nil, errors.New("categorizer: remote classifier requires a labeler")
	}
	if fallback == nil {
		return nil, errors.New("categorizer: remote classifier requires a rule-based fallback")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Remote{labeler: labeler, fallback: fallback, timeout: timeout, log: log}, nil
}

// Fallback exposes the embedded rule-based classifier.
func (c *Remote) Fallback() *RuleBased { return c.fallback }

// Categorize implements Classifier.
func (c *Remote) Categorize(ctx context.Context, descriptions []string) []string {
	if len(descriptions) == 0 {
		return []string{}
	}

	labels, err := c.request(ctx, descriptions)
	if err != nil {
		c.log.Warn().
			Err(err).
			Int("descriptions", len(descriptions)).
			Msg("remote categorization failed, using rule-based fallback for the whole batch")
		return c.fallback.Categorize(ctx, descriptions)
	}
	return labels
}

func (c *Remote) request(ctx context.Context, descriptions []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	labels, err := c.labeler.Label(ctx, descriptions)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(descriptions) {
		return nil, fmt.Errorf("label count mismatch: got %d, want %d", len(labels), len(descriptions))
	}
	return labels, nil
}
