// Package index holds the in-memory structures derived from the persistent
// store: the employee name trie, the priority-ordered task scheduler and the
// employee-to-task assignment index. All of them are caches over the store,
// never sources of truth.
package index

import "strings"

// MaxPrefixResults caps how many employee ids a single prefix lookup returns.
const MaxPrefixResults = 50

const trieRoot = 0

type trieNode struct {
	children map[rune]int32
	ids      []string
	terminal bool
}

// Trie indexes lowercase employee names by prefix. Nodes live in a flat arena
// addressed by index, and every prefix node carries the ids sharing that
// prefix so a lookup is a walk plus a slice copy, with no subtree collection.
// The index is append-only; there is no deletion path.
type Trie struct {
	nodes []trieNode
}

func NewTrie() *Trie {
	return &Trie{nodes: []trieNode{{children: make(map[rune]int32)}}}
}

// Insert associates employeeID with every prefix of name, lowercased, and
// marks the full name as terminal. Inserting the same pair twice is a no-op.
func (t *Trie) Insert(name, employeeID string) {
	cur := int32(trieRoot)
	for _, r := range strings.ToLower(name) {
		next, ok := t.nodes[cur].children[r]
		if !ok {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{children: make(map[rune]int32)})
			t.nodes[cur].children[r] = next
		}
		cur = next
		t.appendID(cur, employeeID)
	}
	if cur != trieRoot {
		t.nodes[cur].terminal = true
	}
}

// SearchPrefix returns the employee ids recorded under the lowercased prefix,
// in insertion order, capped at MaxPrefixResults. An unknown or empty prefix
// yields an empty result.
func (t *Trie) SearchPrefix(prefix string) []string {
	cur := int32(trieRoot)
	for _, r := range strings.ToLower(prefix) {
		next, ok := t.nodes[cur].children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	if cur == trieRoot {
		return nil
	}
	ids := t.nodes[cur].ids
	if len(ids) > MaxPrefixResults {
		ids = ids[:MaxPrefixResults]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of arena nodes, root included.
func (t *Trie) Len() int {
	return len(t.nodes)
}

func (t *Trie) appendID(node int32, id string) {
	for _, existing := range t.nodes[node].ids {
		if existing == id {
			return
		}
	}
	t.nodes[node].ids = append(t.nodes[node].ids, id)
}
