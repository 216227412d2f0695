// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// MissingChannelError is returned when a mark lacks an encoding for a
// channel it requires.
type MissingChannelError struct {
	Mark    string
	Channel Channel
}

func (e *MissingChannelError) Error() string {
	return fmt.Sprintf("%s mark requires an encoding for channel %q", e.Mark, e.Channel)
}

// ContextNotFoundError is returned by operations that require an
// enclosing Plot when there is none, or when the Plot has been
// disposed.
type ContextNotFoundError struct {
	Op string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("%s must be used within a containing plot", e.Op)
}

// DomainKindError is returned when the domains registered for one
// channel mix continuous and discrete kinds.
type DomainKindError struct {
	Channel Channel
}

func (e *DomainKindError) Error() string {
	return fmt.Sprintf("channel %q has both continuous and discrete domains", e.Channel)
}
