package ezo

import "time"

// ioRetryBackoff is the fixed wait between a failed bus operation and
// its single retry.
const ioRetryBackoff = 300 * time.Millisecond

// withRetry runs op and, on failure, retries exactly once after a
// fixed backoff. The second failure is returned as-is; there are no
// further retries.
func (d *Device) withRetry(op func() error) error {
	err := op()
	if err == nil {
		return nil
	}

	d.log.Debug().
		Err(err).
		Dur("Backoff", ioRetryBackoff).
		Msg("Bus operation failed - backing off and retrying once")

	d.sleep(ioRetryBackoff)

	return op()
}
