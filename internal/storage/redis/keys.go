package redis

import (
	"fmt"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Key prefix for all history data
const keyPrefix = "yahtzee"

// seqPerMilli is how many saves within one millisecond the index can tell apart
const seqPerMilli = 1000

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id model.GameID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// summariesIndexKey returns the Redis key for the sorted set of summary IDs,
// scored by completion time
func summariesIndexKey() string {
	return fmt.Sprintf("%s:idx:summaries", keyPrefix)
}

// summarySeqKey returns the Redis key of the counter that orders saves
func summarySeqKey() string {
	return fmt.Sprintf("%s:seq:summaries", keyPrefix)
}
