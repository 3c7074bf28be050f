package trie

// New returns an empty Trie holding only the root.
func New() *Trie {
	return &Trie{nodes: make([]node, 1)}
}

// Insert adds seq to the trie. Inserting the same sequence twice counts it twice.
func (t *Trie) Insert(seq string) {
	cur := root
	for i := 0; i < len(seq); i++ {
		cur = t.child(cur, seq[i])
		t.nodes[cur].pass++
	}
	t.nodes[cur].end++
	t.size++
}

// InsertBytes is Insert for a byte slice.
func (t *Trie) InsertBytes(seq []byte) {
	t.Insert(string(seq))
}

// child returns the child of cur along c, creating it if missing.
func (t *Trie) child(cur int, c byte) int {
	if next, ok := t.nodes[cur].children[c]; ok {
		return next
	}
	t.nodes = append(t.nodes, node{})
	next := len(t.nodes) - 1
	if t.nodes[cur].children == nil {
		t.nodes[cur].children = make(map[byte]int)
	}
	t.nodes[cur].children[c] = next

	return next
}

// walk follows q from the root; ok is false if an edge is missing.
func (t *Trie) walk(q string) (idx int, ok bool) {
	cur := root
	for i := 0; i < len(q); i++ {
		next, exists := t.nodes[cur].children[q[i]]
		if !exists {
			return 0, false
		}
		cur = next
	}

	return cur, true
}

// CountWithPrefix returns how many inserted sequences start with q.
// The empty q is a prefix of everything and returns Len().
func (t *Trie) CountWithPrefix(q string) int {
	if q == "" {
		return t.size
	}
	idx, ok := t.walk(q)
	if !ok {
		return 0
	}

	return t.nodes[idx].pass
}

// CountExact returns how many times q itself was inserted.
func (t *Trie) CountExact(q string) int {
	idx, ok := t.walk(q)
	if !ok {
		return 0
	}

	return t.nodes[idx].end
}

// CountPrefixesOf returns how many inserted sequences are prefixes of q:
// the sum of end counts over the nodes on the path of q, root excluded.
// The walk stops at the first missing edge, keeping what was summed so far.
func (t *Trie) CountPrefixesOf(q string) int {
	cur, total := root, 0
	for i := 0; i < len(q); i++ {
		next, ok := t.nodes[cur].children[q[i]]
		if !ok {
			break
		}
		cur = next
		total += t.nodes[cur].end
	}

	return total
}

// Len returns the number of inserted sequences.
func (t *Trie) Len() int { return t.size }

// Nodes returns the number of nodes in the arena, root included.
func (t *Trie) Nodes() int { return len(t.nodes) }

// Scan reports every inserted non-empty sequence that occurs in text,
// mapped to its ascending start positions.
//
// Complexity: O(n·D) for text length n and trie depth D.
func (t *Trie) Scan(text string) map[string][]int {
	results := make(map[string][]int)
	for i := 0; i < len(text); i++ {
		cur := root
		for j := i; j < len(text); j++ {
			next, ok := t.nodes[cur].children[text[j]]
			if !ok {
				break
			}
			cur = next
			if t.nodes[cur].end > 0 {
				w := text[i : j+1]
				results[w] = append(results[w], i)
			}
		}
	}

	return results
}
