// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"
)

var fixedNow = time.Date(2026, 4, 1, 9, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))

func fixedClock() time.Time { return fixedNow }

type fakeMetrics struct {
	registered int
	sent       int
	received   int
}

func (f *fakeMetrics) IncrementUsersRegistered()   { f.registered++ }
func (f *fakeMetrics) IncrementPostcardsSent()     { f.sent++ }
func (f *fakeMetrics) IncrementPostcardsReceived() { f.received++ }

// sequenceGenerator returns prefix-1, prefix-2, ...
type sequenceGenerator struct {
	prefix string
	n      int
}

func (g *sequenceGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
