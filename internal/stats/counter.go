package stats

import "sort"

// Entry is one key of a Counter with its count.
type Entry struct {
	Key   string
	Count int
}

// Counter counts string keys and remembers the order keys were first seen in.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		order:  make([]string, 0),
	}
}

func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}

	c.counts[key]++
}

// Len is the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Entries returns the keys in first-seen order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Count: c.counts[key]})
	}

	return entries
}

// ByKey returns the entries sorted by ascending key.
func (c *Counter) ByKey() []Entry {
	entries := c.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}

// MostCommon returns up to limit entries by descending count. Equal counts keep
// first-seen order. A non-positive limit returns every entry.
func (c *Counter) MostCommon(limit int) []Entry {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return entries
}
