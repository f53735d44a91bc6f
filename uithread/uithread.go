// Package uithread marks and asserts the owner goroutine. Holders are
// single-threaded by contract; every construction and read asserts that the
// calling goroutine has been marked as the owner thread. The guard rejects
// misuse, it never queues work onto the correct goroutine.
package uithread

import (
	"github.com/insolar/gls"

	"github.com/ygrebnov/viewbind/errors"
)

const glsOwnerKey = "viewbind.ownerThread"

// Mark designates the current goroutine as the owner thread.
func Mark() {
	gls.Set(glsOwnerKey, true)
}

// Unmark removes the owner-thread designation from the current goroutine.
func Unmark() {
	gls.Set(glsOwnerKey, nil)
}

// Check returns errors.ErrOffOwnerThread when the current goroutine is not
// marked as the owner thread.
func Check() error {
	if marked, ok := gls.Get(glsOwnerKey).(bool); !ok || !marked {
		return errors.ErrOffOwnerThread
	}
	return nil
}
