package ai

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinearBackoff(t *testing.T) {
	d := LinearBackoff(BackoffStep)
	assert.Equal(t, 800*time.Millisecond, d(1))
	assert.Equal(t, 1600*time.Millisecond, d(2))
	assert.Equal(t, 2400*time.Millisecond, d(3))
}

func TestRetryDoAttemptCount(t *testing.T) {
	for _, maxRetries := range []int{0, 1, 2, 5} {
		rec := &sleepRecorder{}
		r := Retry{MaxRetries: maxRetries, Delay: LinearBackoff(time.Second), Sleep: rec.Sleep}

		var seen []int
		var failures []int
		err := r.Do(func(attempt int) error {
			seen = append(seen, attempt)
			return errors.New("fail")
		}, func(attempt int, _ error) {
			failures = append(failures, attempt)
		})

		assert.Error(t, err)
		assert.Len(t, seen, maxRetries+1)
		assert.Equal(t, seen, failures)
		assert.Len(t, rec.delays, maxRetries)
		for i, d := range rec.delays {
			assert.Equal(t, time.Duration(i+1)*time.Second, d)
		}
	}
}

func TestRetryDoStopsOnSuccess(t *testing.T) {
	rec := &sleepRecorder{}
	r := Retry{MaxRetries: 4, Sleep: rec.Sleep}
	calls := 0
	err := r.Do(func(attempt int) error {
		calls++
		if attempt == 2 {
			return nil
		}
		return errors.New("nope")
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{BackoffStep}, rec.delays)
}

func TestRetryNegativeMaxRetries(t *testing.T) {
	assert.Equal(t, 1, Retry{MaxRetries: -3}.Attempts())
}
