package categorizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLabeler is a scriptable remote collaborator.
type fakeLabeler struct {
	labels []string
	err    error
	calls  int
}

func (f *fakeLabeler) Label(_ context.Context, _ []string) ([]string, error) {
	f.calls++
	return f.labels, f.err
}

func newRemote(t *testing.T, labeler BatchLabeler) *Remote {
	t.Helper()
	remote, err := NewRemote(labeler, NewRuleBased(nil), time.Second, zerolog.Nop())
	require.NoError(t, err)
	return remote
}

func TestNewRemote_RequiresFallback(t *testing.T) {
	_, err := NewRemote(&fakeLabeler{}, nil, time.Second, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewRemote(nil, NewRuleBased(nil), time.Second, zerolog.Nop())
	assert.Error(t, err)
}

func TestRemote_UsesRemoteLabels(t *testing.T) {
	remote := newRemote(t, &fakeLabeler{labels: []string{"Travel", "Income", "Shopping"}})

	labels := remote.Categorize(context.Background(), []string{"a", "b", "c"})
	assert.Equal(t, []string{"Travel", "Income", "Shopping"}, labels)
}

func TestRemote_ErrorFallsBackWholeBatch(t *testing.T) {
	remote := newRemote(t, &fakeLabeler{err: errors.New("service unavailable")})

	labels := remote.Categorize(context.Background(), []string{
		"UPI/ZOMATO/ref",
		"SALARY CREDIT",
		"MISC",
	})
	assert.Equal(t, []string{"UPI Payment", "Income", FallbackCategory}, labels)
}

// A response that is shorter than the batch must be discarded
// entirely; remote labels are never mixed with fallback labels.
func TestRemote_ShortResponseFallsBackWholeBatch(t *testing.T) {
	labeler := &fakeLabeler{labels: []string{"Travel", "Income"}}
	remote := newRemote(t, labeler)

	labels := remote.Categorize(context.Background(), []string{
		"UPI/ZOMATO/ref",
		"SALARY CREDIT",
		"MISC",
	})

	assert.Equal(t, 1, labeler.calls)
	assert.Equal(t, []string{"UPI Payment", "Income", FallbackCategory}, labels)
}

func TestRemote_EmptyBatch(t *testing.T) {
	labeler := &fakeLabeler{}
	remote := newRemote(t, labeler)

	assert.Empty(t, remote.Categorize(context.Background(), nil))
	assert.Zero(t, labeler.calls)
}
