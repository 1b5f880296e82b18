package washline

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[node]int),
		max:     1,
	}
}

func (ids nodeids) find(n node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes). Nodes shared between branches are output once.
// Absent children are drawn as empty circles.
func Rope2Dot(r *Rope, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	if r != nil && r.head != nil {
		nilcnt := 0
		emptyChild := func(parent int) {
			nilcnt++
			nilid := fmt.Sprintf("nil%d", nilcnt)
			fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", parent, nilid)
		}
		stack := newDFSStack(32)
		stack.push(r.head)
		ids.alloc(r.head)
		for !stack.empty() {
			frame := stack.top()
			ID := ids.find(frame.node)
			if frame.node.IsLeaf() {
				leaf := frame.node.(*leafNode)
				label := fmt.Sprintf("%d\\n“%s”", leaf.length, strstart(leaf))
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
				stack.pop()
				continue
			}
			branch := frame.node.(*branchNode)
			if !frame.leftVisited {
				frame.leftVisited = true
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d|%d\" %s];\n", ID,
					branch.leftWeight, branch.rightWeight, nodeDotStyles(false))
				if branch.left == nil {
					emptyChild(ID)
				} else {
					seen := ids.find(branch.left) > 0
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(branch.left))
					if !seen {
						stack.push(branch.left)
					}
				}
			} else if !frame.rightVisited {
				frame.rightVisited = true
				if branch.right == nil {
					emptyChild(ID)
				} else {
					seen := ids.find(branch.right) > 0
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(branch.right))
					if !seen {
						stack.push(branch.right)
					}
				}
			} else {
				stack.pop()
			}
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// strstart returns the first few runes of a leaf, escaped for a DOT label.
func strstart(leaf *leafNode) string {
	s := leaf.slice(0, 10)
	if leaf.length > 10 {
		s += "…"
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
