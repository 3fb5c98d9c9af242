package trellis

import "fmt"

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Thresholds for debug-mode tree shape warnings. Overridden by Config.
var (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if the depth of n exceeds the threshold.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			"node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has too many children.
func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
