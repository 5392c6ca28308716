package symbols

import (
	"math/bits"

	"github.com/funvibe/tyck/internal/typesystem"
)

// Persistent Hash Array Mapped Trie (HAMT).
// Every Put returns a new map sharing structure with the old one,
// so any number of extended tables can coexist without locks.

const (
	hamtBits = 5
	hamtSize = 1 << hamtBits // 32
	hamtMask = hamtSize - 1
)

// persistentMap is an immutable map from symbol keys to schemes.
type persistentMap struct {
	root  *hamtNode
	count int
}

// hamtNode is a node in the HAMT.
type hamtNode struct {
	bitmap uint32        // which indices are populated
	nodes  []interface{} // hamtEntry or *hamtNode
}

// hamtEntry holds a key-value pair.
type hamtEntry struct {
	hash  uint32
	key   Key
	value typesystem.Scheme
}

func emptyMap() *persistentMap {
	return &persistentMap{}
}

// Len returns the number of entries. A nil map is empty.
func (m *persistentMap) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Get returns the scheme for a key.
func (m *persistentMap) Get(key Key) (typesystem.Scheme, bool) {
	if m == nil || m.root == nil {
		return typesystem.Scheme{}, false
	}
	return m.root.get(key.Hash(), key, 0)
}

// Put returns a new map with the key bound to value. An existing
// binding for the key is replaced (last write wins).
func (m *persistentMap) Put(key Key, value typesystem.Scheme) *persistentMap {
	if m == nil {
		m = emptyMap()
	}
	hash := key.Hash()

	var newRoot *hamtNode
	var added bool

	if m.root == nil {
		newRoot, added = (&hamtNode{}).put(hash, key, value, 0)
	} else {
		newRoot, added = m.root.put(hash, key, value, 0)
	}

	newCount := m.count
	if added {
		newCount++
	}

	return &persistentMap{root: newRoot, count: newCount}
}

// Keys returns all keys, in no particular order.
func (m *persistentMap) Keys() []Key {
	if m == nil {
		return nil
	}
	keys := make([]Key, 0, m.count)
	if m.root != nil {
		m.root.collectKeys(&keys)
	}
	return keys
}

// --- hamtNode methods ---

func (n *hamtNode) get(hash uint32, key Key, shift uint) (typesystem.Scheme, bool) {
	if shift >= 32 {
		// Collision bucket search
		for _, node := range n.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				return entry.value, true
			}
		}
		return typesystem.Scheme{}, false
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx

	if n.bitmap&bit == 0 {
		return typesystem.Scheme{}, false
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	node := n.nodes[pos]

	switch v := node.(type) {
	case hamtEntry:
		if v.hash == hash && v.key == key {
			return v.value, true
		}
		return typesystem.Scheme{}, false
	case *hamtNode:
		return v.get(hash, key, shift+hamtBits)
	}

	return typesystem.Scheme{}, false
}

func (n *hamtNode) put(hash uint32, key Key, value typesystem.Scheme, shift uint) (*hamtNode, bool) {
	// Past the hash bits identical hashes land in a collision
	// bucket holding plain entries.
	if shift >= 32 {
		newNode := n.clone()
		for i, node := range newNode.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				newNode.nodes[i] = hamtEntry{hash: hash, key: key, value: value}
				return newNode, false
			}
		}
		newNode.nodes = append(newNode.nodes, hamtEntry{hash: hash, key: key, value: value})
		return newNode, true
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx

	newNode := n.clone()

	if n.bitmap&bit == 0 {
		// New entry
		newNode.bitmap |= bit
		pos := bits.OnesCount32(newNode.bitmap & (bit - 1))

		newNode.nodes = append(newNode.nodes, nil)
		copy(newNode.nodes[pos+1:], newNode.nodes[pos:])
		newNode.nodes[pos] = hamtEntry{hash: hash, key: key, value: value}

		return newNode, true
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	existing := newNode.nodes[pos]

	switch v := existing.(type) {
	case hamtEntry:
		if v.hash == hash && v.key == key {
			newNode.nodes[pos] = hamtEntry{hash: hash, key: key, value: value}
			return newNode, false
		}

		// Collision: push both entries down into a child node.
		child := &hamtNode{}
		child, _ = child.put(v.hash, v.key, v.value, shift+hamtBits)
		child, _ = child.put(hash, key, value, shift+hamtBits)

		newNode.nodes[pos] = child
		return newNode, true

	case *hamtNode:
		newChild, added := v.put(hash, key, value, shift+hamtBits)
		newNode.nodes[pos] = newChild
		return newNode, added
	}

	return newNode, false
}

func (n *hamtNode) clone() *hamtNode {
	c := &hamtNode{
		bitmap: n.bitmap,
		nodes:  make([]interface{}, len(n.nodes)),
	}
	copy(c.nodes, n.nodes)
	return c
}

func (n *hamtNode) collectKeys(keys *[]Key) {
	for _, node := range n.nodes {
		switch v := node.(type) {
		case hamtEntry:
			*keys = append(*keys, v.key)
		case *hamtNode:
			v.collectKeys(keys)
		}
	}
}
