// Package roletree keeps the hierarchy of linked guild roles. A member given a role is meant
// to gain every ancestor of that role.
package roletree

import (
	"strings"
	"unicode/utf8"
)

// Node is a role in a Tree
type Node struct {
	Value    string
	Children []*Node
}

// IsLeaf reports whether n has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) addChild(value string) *Node {
	child := &Node{Value: value}
	n.Children = append(n.Children, child)

	return child
}

func (n *Node) attach(child *Node) {
	n.Children = append(n.Children, child)
}

func (n *Node) removeChild(value string) *Node {
	for i, child := range n.Children {
		if child.Value == value {
			n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
			return child
		}
	}

	return nil
}

// Tree is a role hierarchy below an unnamed root. A Tree is not safe for concurrent use, see Forest.
type Tree struct {
	root  *Node
	roles map[string]struct{}
}

// New creates an empty Tree
func New() *Tree {
	return &Tree{
		root:  &Node{},
		roles: map[string]struct{}{},
	}
}

// Root returns the unnamed root node
func (t *Tree) Root() *Node {
	return t.root
}

// Find returns the first node holding role in depth-first order, or nil
func (t *Tree) Find(role string) *Node {
	return findRec(t.root, role)
}

func findRec(cur *Node, value string) *Node {
	if cur.Value == value {
		return cur
	}
	for _, child := range cur.Children {
		if found := findRec(child, value); found != nil {
			return found
		}
	}

	return nil
}

// Contains reports whether role was linked as a child of another role or of the root
func (t *Tree) Contains(role string) bool {
	_, ok := t.roles[role]
	return ok
}

// Link adds children below parent. An empty parent denotes the root. A child that is an unlinked
// top-level parent moves below parent together with its subtree. It returns false when parent is
// not in the tree.
func (t *Tree) Link(parent string, children ...string) bool {
	node := t.parentNode(parent)
	if node == nil {
		return false
	}
	for _, child := range children {
		if moved := t.detachTop(child); moved != nil {
			node.attach(moved)
		} else {
			node.addChild(child)
		}
		t.roles[child] = struct{}{}
	}

	return true
}

// AddTop places role below the root without marking it linked, so it can still be linked below
// another role later. It returns false when role is already in the tree.
func (t *Tree) AddTop(role string) bool {
	if role == "" || t.Find(role) != nil {
		return false
	}
	t.root.addChild(role)

	return true
}

// IsAncestor reports whether role lies in the subtree of ancestor, ancestor included
func (t *Tree) IsAncestor(ancestor, role string) bool {
	node := t.Find(ancestor)
	return node != nil && findRec(node, role) != nil
}

func (t *Tree) detachTop(role string) *Node {
	if t.Contains(role) {
		return nil
	}

	return t.root.removeChild(role)
}

// Insert places role between parent and its direct child. It returns false when parent is not
// in the tree or child is not one of its children.
func (t *Tree) Insert(parent, role, child string) bool {
	prev := t.parentNode(parent)
	if prev == nil {
		return false
	}
	next := prev.removeChild(child)
	if next == nil {
		return false
	}
	t.roles[role] = struct{}{}
	prev.addChild(role).attach(next)

	return true
}

func (t *Tree) parentNode(parent string) *Node {
	if parent == "" {
		return t.root
	}

	return t.Find(parent)
}

// String renders the tree with the role ids as names
func (t *Tree) String() string {
	return t.Format(func(role string) string { return role })
}

// Format renders the tree, one path per line, using translate to name every role. The root is
// named translate(""). Children after the first start below their first sibling:
//
//	@everyone->admin->mod
//	                ->trial
//	         ->bot
func (t *Tree) Format(translate func(role string) string) string {
	var sb strings.Builder
	t.formatRec(&sb, t.root, 0, translate)

	return sb.String()
}

func (t *Tree) formatRec(sb *strings.Builder, node *Node, width int, translate func(string) string) {
	name := translate(node.Value)
	if node != t.root {
		sb.WriteString("->")
		width += 2
	}
	sb.WriteString(name)
	width += utf8.RuneCountInString(name)

	for i, child := range node.Children {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", width))
		}
		t.formatRec(sb, child, width, translate)
	}
}
