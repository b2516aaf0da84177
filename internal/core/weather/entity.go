package weather

import (
	"sort"
	"sync"

	"weathertext.app/internal/ports"
)

// CachedItem is one provider's fetched weather text
type CachedItem struct {
	Provider    ports.ProviderID `json:"provider"`
	FetchedAtMs int64            `json:"fetchedAtMs"`
	Text        string           `json:"text"`
}

// IsFreshAt reports whether the item is still usable at nowMs.
// The boundary is inclusive: an item fetched exactly ttlSeconds ago is fresh.
func (c CachedItem) IsFreshAt(nowMs int64, ttlSeconds int) bool {
	return nowMs <= c.FetchedAtMs+int64(ttlSeconds)*1000
}

// Table holds at most one CachedItem per provider. The zero value is ready to use.
// Stale entries are only dropped when their provider is queried again.
type Table struct {
	mu    sync.Mutex
	items map[ports.ProviderID]CachedItem
}

// NewTable creates an empty cache table
func NewTable() *Table {
	return &Table{items: make(map[ports.ProviderID]CachedItem)}
}

// Lookup returns the stored item for provider regardless of age
func (t *Table) Lookup(provider ports.ProviderID) (CachedItem, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.items[provider]
	return item, ok
}

// Store overwrites the entry for item.Provider
func (t *Table) Store(item CachedItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.items == nil {
		t.items = make(map[ports.ProviderID]CachedItem)
	}
	t.items[item.Provider] = item
}

// Remove deletes the entry for provider, if any
func (t *Table) Remove(provider ports.ProviderID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.items, provider)
}

// Len returns the number of stored entries, stale ones included
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.items)
}

// Entries returns a snapshot of all entries ordered by provider
func (t *Table) Entries() []CachedItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]CachedItem, 0, len(t.items))
	for _, item := range t.items {
		entries = append(entries, item)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Provider < entries[j].Provider
	})
	return entries
}

// freshOrEvict returns the fresh entry for provider, deleting it first if stale
func (t *Table) freshOrEvict(provider ports.ProviderID, nowMs int64, ttlSeconds int) (CachedItem, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.items[provider]
	if !ok {
		return CachedItem{}, false
	}
	if item.IsFreshAt(nowMs, ttlSeconds) {
		return item, true
	}

	delete(t.items, provider)
	return CachedItem{}, false
}

// IsEmpty reports whether the table holds no entries for any provider
func IsEmpty(table *Table) bool {
	return table == nil || table.Len() == 0
}
