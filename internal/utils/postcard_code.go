// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const postcardCodePrefix = "PC"

// PostcardCodeGenerator builds human-readable postcard codes of the form
// PC-<unix seconds>-<8 hex chars>. Codes are unique in the store; callers
// retry on a collision.
type PostcardCodeGenerator struct {
	now func() time.Time
}

func NewPostcardCodeGenerator() *PostcardCodeGenerator {
	return &PostcardCodeGenerator{now: time.Now}
}

func (g *PostcardCodeGenerator) Generate() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", postcardCodePrefix, g.now().Unix(), random)
}
