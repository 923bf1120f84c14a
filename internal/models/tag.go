package models

// Tag is a hashtag token extracted from card content. Names are globally
// unique and case-sensitive. A tag row outlives its last association; orphan
// rows are reclaimed only by the cleanup batch.
type Tag struct {
	ID   string
	Name string
}
