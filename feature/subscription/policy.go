package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
)

// ErrApprovalTimeout is returned when a subscription request is not approved within the
// wait bound or the context ends first.
var ErrApprovalTimeout = errors.New("subscription request was not approved in time")

var errPending = errors.New("approval pending")

// ApprovalPolicy bounds the wait for a subscription request to be auto-approved.
type ApprovalPolicy struct {
	// Interval is the pause between two checks.
	Interval time.Duration
	// MaxWait bounds the whole wait.
	MaxWait time.Duration
}

// Wait calls approved until it reports true. The first check runs immediately. An error from
// approved stops the wait and is returned, unless the wait has already expired.
func (p ApprovalPolicy) Wait(ctx context.Context, approved func(ctx context.Context) (bool, error)) error {
	waitCtx, cancel := context.WithTimeout(ctx, p.MaxWait)
	defer cancel()

	var checkErr error
	err := retry.Do(
		func() error {
			ok, err := approved(waitCtx)
			if err != nil {
				checkErr = err
				return retry.Unrecoverable(err)
			}
			if !ok {
				return errPending
			}
			return nil
		},
		retry.Context(waitCtx),
		retry.Attempts(0),
		retry.Delay(p.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if waitCtx.Err() != nil {
		return fmt.Errorf("%w: waited %s", ErrApprovalTimeout, p.MaxWait)
	}
	if checkErr != nil {
		return checkErr
	}
	return fmt.Errorf("%w: %v", ErrApprovalTimeout, err)
}
