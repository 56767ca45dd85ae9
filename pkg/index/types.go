// Package index builds and reads the date offset index for a log file.
//
// The index maps each day's date key to the byte offset of the first line
// carrying that key, so extraction can seek straight to a day's entries
// instead of scanning the whole file.
package index

// Entry records the byte offset of the first line seen for a date key.
type Entry struct {
	// Date is the grouping key, normally a YYYY-MM-DD prefix.
	Date string `json:"date"`

	// Offset is the byte position of the first line with this key.
	Offset int64 `json:"offset"`
}

// Index is an insertion-ordered mapping from date key to the offset of
// that key's first occurrence in the log file.
type Index struct {
	entries []Entry
	offsets map[string]int64
}

// New returns an empty index.
func New() *Index {
	return &Index{
		offsets: make(map[string]int64),
	}
}

// Add records the offset for a date key. Only the first offset per key is
// kept; later calls for the same key are ignored, even across disjoint
// runs of the key. Reports whether the entry was added.
func (ix *Index) Add(date string, offset int64) bool {
	if _, ok := ix.offsets[date]; ok {
		return false
	}
	ix.offsets[date] = offset
	ix.entries = append(ix.entries, Entry{Date: date, Offset: offset})
	return true
}

// Lookup returns the recorded offset for a date key.
func (ix *Index) Lookup(date string) (int64, bool) {
	offset, ok := ix.offsets[date]
	return offset, ok
}

// Entries returns the index entries in insertion order.
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// Len returns the number of distinct date keys in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}
