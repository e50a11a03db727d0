package localize

import (
	"fmt"
	"strings"
)

// Value is one node of a translation tree: either a Leaf holding a translated
// string or a Node holding further nested values. A given key path should
// address one or the other consistently; resources that use the same path
// both ways resolve in an implementation-defined manner.
type Value interface {
	isValue()
}

// Leaf is a terminal translation string.
type Leaf string

// Node is a nested mapping of key segments to values.
type Node map[string]Value

func (Leaf) isValue() {}
func (Node) isValue() {}

// toNode converts a freshly decoded document into a translation tree.
// Scalars other than strings are stringified so numeric or boolean leaves in
// a resource remain addressable.
func toNode(data map[string]any) Node {
	node := make(Node, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			node[key] = Leaf(v)
		case map[string]any:
			node[key] = toNode(v)
		default:
			node[key] = Leaf(fmt.Sprintf("%v", v))
		}
	}
	return node
}

// resolveSubmap walks all but the last segment of a dotted key path and
// returns the node that would hold the leaf. A missing or non-node step
// degrades to the empty node instead of failing, so the eventual lookup
// simply misses.
func resolveSubmap(root Node, keyPath string) Node {
	segments := strings.Split(keyPath, ".")
	node := root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(Node)
		if !ok {
			node = Node{}
			continue
		}
		node = child
	}
	return node
}

// lookup resolves a dotted key path to its leaf string. The second return is
// false when the path is absent or addresses a subtree.
func lookup(root Node, keyPath string) (string, bool) {
	submap := resolveSubmap(root, keyPath)
	leaf, ok := submap[lastSegment(keyPath)].(Leaf)
	if !ok {
		return "", false
	}
	return string(leaf), true
}

// lastSegment returns the final segment of a dotted key path.
func lastSegment(keyPath string) string {
	return keyPath[strings.LastIndexByte(keyPath, '.')+1:]
}
