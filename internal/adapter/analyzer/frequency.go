package analyzer

import (
	"sort"

	"textfreq/internal/domain"
)

// FrequencyTable counts items and remembers the order in which each item
// was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// CountItems builds a table from items.
func CountItems(items []string) *FrequencyTable {
	ft := NewFrequencyTable()
	for _, item := range items {
		ft.Add(item)
	}
	return ft
}

func (f *FrequencyTable) Add(item string) {
	if _, seen := f.counts[item]; !seen {
		f.order = append(f.order, item)
	}
	f.counts[item]++
	f.total++
}

func (f *FrequencyTable) Count(item string) int {
	return f.counts[item]
}

// Len returns the number of distinct items.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns the number of items added.
func (f *FrequencyTable) Total() int {
	return f.total
}

// Top returns at most k entries by descending count. Ties keep
// first-occurrence order. k <= 0 returns every entry.
func (f *FrequencyTable) Top(k int) []domain.FrequencyEntry {
	entries := make([]domain.FrequencyEntry, len(f.order))
	for i, item := range f.order {
		entries[i] = domain.FrequencyEntry{Item: item, Count: f.counts[item]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
