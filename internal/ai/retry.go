package ai

import "time"

// BackoffStep is the linear backoff unit: retry k waits k*BackoffStep.
const BackoffStep = 800 * time.Millisecond

// Retry is a bounded retry policy. Attempts are numbered from 1 and there
// are at most MaxRetries+1 of them. Sleeps are not cancellable.
type Retry struct {
	MaxRetries int
	Delay      func(attempt int) time.Duration
	Sleep      func(time.Duration)
}

func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

func DefaultRetry() Retry {
	return Retry{MaxRetries: 2, Delay: LinearBackoff(BackoffStep), Sleep: time.Sleep}
}

func (r Retry) Attempts() int {
	if r.MaxRetries < 0 {
		return 1
	}
	return r.MaxRetries + 1
}

// Do runs fn until it succeeds or the attempts run out, and returns the
// error of the last attempt. onFailure, if set, sees every failed attempt
// before the backoff sleep. There is no sleep after the final attempt.
func (r Retry) Do(fn func(attempt int) error, onFailure func(attempt int, err error)) error {
	delay := r.Delay
	if delay == nil {
		delay = LinearBackoff(BackoffStep)
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	attempts := r.Attempts()
	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}
		last = err
		if onFailure != nil {
			onFailure(attempt, err)
		}
		if attempt < attempts {
			sleep(delay(attempt))
		}
	}
	return last
}
