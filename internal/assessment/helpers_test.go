package assessment

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/balancer/internal/catalog"
)

const testCatalogYAML = `
version: v0.1.0
title: Test Assessment
sections:
  - id: intro
    title: Welcome
  - id: alpha
    title: Alpha
    scenarios:
      - id: alpha-1
        title: First
        situation: Something happened.
        questions:
          - id: a-choice
            text: Pick one
            type: multiple-choice
            options: [Fast, Careful]
            required: true
          - id: a-note
            text: Anything else?
            type: text
            required: false
      - id: alpha-2
        title: Second
        situation: Something else happened.
        questions:
          - id: a-rank
            text: Rank these
            type: ranking
            options: [One, Two, Three]
            required: true
          - id: a-scale
            text: How sure?
            type: scale
            options: ["1", "2", "3", "4", "5"]
            required: true
      - id: alpha-3
        title: Optional only
        situation: Nothing is required here.
        questions:
          - id: a-extra
            text: Extra thoughts
            type: text
            required: false
  - id: beta
    title: Beta
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(strings.NewReader(testCatalogYAML))
	if err != nil {
		t.Fatalf("load test catalog: %v", err)
	}
	return c
}

var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	now := start.Add(-step)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
