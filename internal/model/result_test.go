package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummaryMerge(t *testing.T) {
	var s RunSummary
	s.Merge(SourceResult{Source: "tx_sos", Scraped: 10, Inserted: 7, Skipped: 2, Errors: 1})
	s.Merge(SourceResult{Source: "fmcsa", Scraped: 5, Inserted: 5})
	s.Merge(SourceResult{Source: "osha", Err: "portal down"})

	assert.Len(t, s.Sources, 3)
	assert.Equal(t, 15, s.Scraped)
	assert.Equal(t, 12, s.Inserted)
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, "portal down", s.Sources[2].Err)
}
