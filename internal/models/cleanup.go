package models

// CleanupResult reports how many rows a retention cleanup pass physically
// removed, per entity class.
type CleanupResult struct {
	Cards      int
	Columns    int
	OrphanTags int
}
