// Package threads projects the flat, parent-referencing comment list of a
// bench into reply trees.
package threads

import "github.com/zatekoja/benchmap/internal/domain/entities"

// Node is a comment together with the replies attached to it
type Node struct {
	entities.Comment
	Replies []*Node `json:"replies"`
}

// Thread is a root comment with every descendant flattened into one
// chronological list, the shape the bench detail view renders.
type Thread struct {
	entities.Comment
	Replies    []entities.Comment `json:"replies"`
	ReplyCount int                `json:"reply_count"`
}

// Build nests comments under their parents. Input order (creation time
// ascending) is kept for roots and for each reply list. A comment whose
// parent is missing from the input becomes a root.
//
// Indexing happens before attachment, so every comment is classified exactly
// once whatever its parent links look like.
func Build(comments []entities.Comment) []*Node {
	nodes := make([]*Node, len(comments))
	byID := make(map[string]*Node, len(comments))
	for i := range comments {
		n := &Node{Comment: comments[i], Replies: []*Node{}}
		nodes[i] = n
		if _, exists := byID[n.ID]; !exists {
			byID[n.ID] = n
		}
	}

	roots := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsReply() {
			if parent, ok := byID[*n.ParentID]; ok && parent != n {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// Flatten returns all descendants of n depth-first, children in attachment
// order. n itself is not included.
func Flatten(n *Node) []entities.Comment {
	out := []entities.Comment{}
	walk(n, func(cur *Node) { out = append(out, cur.Comment) })
	return out
}

// CountReplies is the "Replies (N)" number shown under a root comment
func CountReplies(n *Node) int {
	count := 0
	walk(n, func(*Node) { count++ })
	return count
}

// walk visits every descendant of n once, depth-first in attachment order
func walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}

	visited := map[*Node]bool{n: true}
	stack := make([]*Node, 0, len(n.Replies))
	for i := len(n.Replies) - 1; i >= 0; i-- {
		stack = append(stack, n.Replies[i])
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		visit(cur)

		for i := len(cur.Replies) - 1; i >= 0; i-- {
			stack = append(stack, cur.Replies[i])
		}
	}
}

// Threads builds the tree and flattens each root's descendants.
func Threads(comments []entities.Comment) []Thread {
	roots := Build(comments)
	threads := make([]Thread, 0, len(roots))
	for _, root := range roots {
		threads = append(threads, Thread{
			Comment:    root.Comment,
			Replies:    Flatten(root),
			ReplyCount: CountReplies(root),
		})
	}
	return threads
}
