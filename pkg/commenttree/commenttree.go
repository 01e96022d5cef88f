// Package commenttree holds the client-side snapshot of a comment forest
// and pure update operations over it. The server is always the source of
// truth; these functions fold a confirmed mutation back into the local
// copy without refetching the whole tree.
//
// All operations are copy-on-write: nodes on the path to the match are
// fresh values, everything off the path keeps pointer identity, and the
// inputs are never mutated. Traversal is depth-first to unbounded depth
// even though the server caps listing at three levels.
package commenttree

import "time"

// Comment is the client-side view of a comment, mirroring the API's JSON
// shape. It is deliberately independent of the server's storage model.
type Comment struct {
	ID        uint       `json:"id"`
	Text      string     `json:"text"`
	Author    string     `json:"author,omitempty"`
	AuthorID  string     `json:"authorId,omitempty"`
	Likes     int        `json:"likes"`
	ParentID  *uint      `json:"parentId,omitempty"`
	Timestamp time.Time  `json:"timestamp,omitempty"`
	Children  []*Comment `json:"children,omitempty"`
}

// Update returns a new forest in which the node with the given id has been
// replaced by transform(node). A miss returns the forest unchanged.
func Update(forest []*Comment, id uint, transform func(Comment) Comment) []*Comment {
	updated, _ := update(forest, id, transform)
	return updated
}

// AppendReply returns a new forest in which reply has been appended to the
// children of the node with id parentID, preserving existing order. A miss
// returns the forest unchanged.
func AppendReply(forest []*Comment, parentID uint, reply *Comment) []*Comment {
	return Update(forest, parentID, func(parent Comment) Comment {
		children := make([]*Comment, 0, len(parent.Children)+1)
		children = append(children, parent.Children...)
		children = append(children, reply)
		parent.Children = children
		return parent
	})
}

// Remove returns a new forest without the node carrying the given id. The
// node's entire subtree goes with it, mirroring the server-side cascade.
// A miss returns the forest unchanged.
func Remove(forest []*Comment, id uint) []*Comment {
	removed, _ := remove(forest, id)
	return removed
}

func update(forest []*Comment, id uint, transform func(Comment) Comment) ([]*Comment, bool) {
	for i, node := range forest {
		if node.ID == id {
			out := make([]*Comment, len(forest))
			copy(out, forest)
			replaced := transform(*node)
			out[i] = &replaced
			return out, true
		}
		if children, ok := update(node.Children, id, transform); ok {
			out := make([]*Comment, len(forest))
			copy(out, forest)
			patched := *node
			patched.Children = children
			out[i] = &patched
			return out, true
		}
	}
	return forest, false
}

func remove(forest []*Comment, id uint) ([]*Comment, bool) {
	for i, node := range forest {
		if node.ID == id {
			out := make([]*Comment, 0, len(forest)-1)
			out = append(out, forest[:i]...)
			out = append(out, forest[i+1:]...)
			return out, true
		}
		if children, ok := remove(node.Children, id); ok {
			out := make([]*Comment, len(forest))
			copy(out, forest)
			patched := *node
			patched.Children = children
			out[i] = &patched
			return out, true
		}
	}
	return forest, false
}
