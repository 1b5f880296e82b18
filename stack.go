package washline

// dfsFrame is an entry of the traversal stack: a node and whether its
// children have already been entered.
type dfsFrame struct {
	node         node
	leftVisited  bool
	rightVisited bool
}

// dfsStack is an explicit stack for depth-first traversal of rope trees.
// Ropes produced by repeated appends are skewed and may be very deep, so we do
// not recurse.
//
// maxDepth records the high-water mark of the stack, which equals the number
// of nodes on the longest root-to-leaf path visited so far.
type dfsStack struct {
	frames   []dfsFrame
	maxDepth int
}

func newDFSStack(capacity int) *dfsStack {
	return &dfsStack{frames: make([]dfsFrame, 0, capacity)}
}

func (s *dfsStack) push(n node) {
	s.frames = append(s.frames, dfsFrame{node: n})
	if len(s.frames) > s.maxDepth {
		s.maxDepth = len(s.frames)
	}
}

func (s *dfsStack) pop() node {
	if len(s.frames) == 0 {
		return nil
	}
	top := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = dfsFrame{} // do not pin the node
	s.frames = s.frames[:len(s.frames)-1]
	return top.node
}

func (s *dfsStack) top() *dfsFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *dfsStack) empty() bool {
	return len(s.frames) == 0
}

// walkLeaves traverses the tree starting at root depth-first, left to right,
// and calls f for every leaf of non-zero length, in document order. pos is
// the rune offset of the leaf within the document. Traversal stops at the
// first error returned by f, which is returned to the caller.
//
// The stack used for the traversal is returned as well, for clients interested
// in its high-water mark.
func walkLeaves(root node, f func(leaf *leafNode, pos uint64) error) (*dfsStack, error) {
	stack := newDFSStack(32)
	if root == nil {
		return stack, nil
	}
	stack.push(root)
	var pos uint64
	for !stack.empty() {
		frame := stack.top()
		if frame.node.IsLeaf() {
			leaf := frame.node.(*leafNode)
			stack.pop()
			if leaf.length == 0 { // artifact of splitting short fragments
				continue
			}
			if err := f(leaf, pos); err != nil {
				return stack, err
			}
			pos += leaf.length
			continue
		}
		branch := frame.node.(*branchNode)
		if !frame.leftVisited {
			frame.leftVisited = true
			if branch.left != nil {
				stack.push(branch.left) // frame is invalid from here on
			}
		} else if !frame.rightVisited {
			frame.rightVisited = true
			if branch.right != nil {
				stack.push(branch.right)
			}
		} else {
			stack.pop()
		}
	}
	return stack, nil
}

// collectLeaves returns all non-empty leaves of a tree in document order.
func collectLeaves(root node) []*leafNode {
	leaves := make([]*leafNode, 0, 64)
	_, _ = walkLeaves(root, func(leaf *leafNode, _ uint64) error {
		leaves = append(leaves, leaf)
		return nil
	})
	return leaves
}
