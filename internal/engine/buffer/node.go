package buffer

// Tree structure constants
const (
	// MaxRowsPerLeaf is the maximum rows in a leaf node before splitting.
	MaxRowsPerLeaf = 64

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// minFill is the size below which a node is merged into a sibling.
	minFill = 2
)

// summary aggregates the metrics of a subtree.
type summary struct {
	Rows  int
	Bytes int
}

func (s summary) add(o summary) summary {
	return summary{Rows: s.Rows + o.Rows, Bytes: s.Bytes + o.Bytes}
}

// node is a node in the row B+ tree.
// Leaf nodes (height == 0) hold rows.
// Internal nodes (height > 0) hold child nodes and a per-child summary so
// that row lookup never has to descend into siblings.
type node struct {
	height  uint8
	summary summary

	// Internal node fields (height > 0)
	children       []*node
	childSummaries []summary

	// Leaf node fields (height == 0)
	rows []*Row
}

func newLeaf(rows []*Row) *node {
	n := &node{rows: rows}
	n.recomputeSummary()
	return n
}

func newInternal(children []*node) *node {
	n := &node{
		height:   children[0].height + 1,
		children: children,
	}
	n.recomputeSummary()
	return n
}

// buildTree creates a balanced tree over rows bottom-up.
func buildTree(rows []*Row) *node {
	if len(rows) <= MaxRowsPerLeaf {
		return newLeaf(rows)
	}

	level := make([]*node, 0, len(rows)/MaxRowsPerLeaf+1)
	for start := 0; start < len(rows); start += MaxRowsPerLeaf {
		end := min(start+MaxRowsPerLeaf, len(rows))
		chunk := make([]*Row, end-start, MaxRowsPerLeaf+1)
		copy(chunk, rows[start:end])
		level = append(level, newLeaf(chunk))
	}

	for len(level) > 1 {
		next := make([]*node, 0, len(level)/MaxChildren+1)
		for start := 0; start < len(level); start += MaxChildren {
			end := min(start+MaxChildren, len(level))
			group := make([]*node, end-start, MaxChildren+1)
			copy(group, level[start:end])
			next = append(next, newInternal(group))
		}
		level = next
	}
	return level[0]
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

func (n *node) size() int {
	if n.isLeaf() {
		return len(n.rows)
	}
	return len(n.children)
}

// recomputeSummary recalculates the summary from children or rows.
func (n *node) recomputeSummary() {
	n.summary = summary{}
	if n.isLeaf() {
		for _, r := range n.rows {
			n.summary = n.summary.add(summary{Rows: 1, Bytes: r.bytes})
		}
		return
	}
	n.childSummaries = n.childSummaries[:0]
	for _, c := range n.children {
		n.childSummaries = append(n.childSummaries, c.summary)
		n.summary = n.summary.add(c.summary)
	}
}

// locate returns the child holding row i and the index of i within it.
// An index equal to the subtree row count resolves to the last child.
func (n *node) locate(i int) (int, int) {
	for c, s := range n.childSummaries {
		if i < s.Rows || c == len(n.childSummaries)-1 {
			return c, i
		}
		i -= s.Rows
	}
	return 0, i
}

// get returns row i of the subtree.
func (n *node) get(i int) *Row {
	for !n.isLeaf() {
		c, j := n.locate(i)
		n, i = n.children[c], j
	}
	return n.rows[i]
}

// each calls fn for every row in order.
func (n *node) each(fn func(*Row)) {
	if n.isLeaf() {
		for _, r := range n.rows {
			fn(r)
		}
		return
	}
	for _, c := range n.children {
		c.each(fn)
	}
}

// insert places r so that it becomes row i of the subtree. If the node
// overflows it is split and the new right sibling is returned.
func (n *node) insert(i int, r *Row) *node {
	if n.isLeaf() {
		n.rows = append(n.rows, nil)
		copy(n.rows[i+1:], n.rows[i:])
		n.rows[i] = r
		n.summary = n.summary.add(summary{Rows: 1, Bytes: r.bytes})
		if len(n.rows) > MaxRowsPerLeaf {
			return n.split()
		}
		return nil
	}

	c, j := n.locate(i)
	sibling := n.children[c].insert(j, r)
	if sibling != nil {
		n.children = append(n.children, nil)
		copy(n.children[c+2:], n.children[c+1:])
		n.children[c+1] = sibling
	}
	n.recomputeSummary()
	if len(n.children) > MaxChildren {
		return n.split()
	}
	return nil
}

// split moves the upper half of n into a new sibling.
func (n *node) split() *node {
	if n.isLeaf() {
		mid := len(n.rows) / 2
		right := make([]*Row, len(n.rows)-mid, MaxRowsPerLeaf+1)
		copy(right, n.rows[mid:])
		clear(n.rows[mid:])
		n.rows = n.rows[:mid]
		n.recomputeSummary()
		return newLeaf(right)
	}

	mid := len(n.children) / 2
	right := make([]*node, len(n.children)-mid, MaxChildren+1)
	copy(right, n.children[mid:])
	clear(n.children[mid:])
	n.children = n.children[:mid]
	n.recomputeSummary()
	return newInternal(right)
}

// remove deletes row i of the subtree and returns it.
func (n *node) remove(i int) *Row {
	if n.isLeaf() {
		r := n.rows[i]
		copy(n.rows[i:], n.rows[i+1:])
		n.rows[len(n.rows)-1] = nil
		n.rows = n.rows[:len(n.rows)-1]
		n.summary.Rows--
		n.summary.Bytes -= r.bytes
		return r
	}

	c, j := n.locate(i)
	r := n.children[c].remove(j)
	n.rebalance(c)
	n.recomputeSummary()
	return r
}

// rebalance drops an empty child or merges an underfull one into a neighbour.
func (n *node) rebalance(c int) {
	child := n.children[c]
	if child.size() == 0 {
		n.removeChild(c)
		return
	}
	if child.size() >= minFill || len(n.children) < 2 {
		return
	}

	left, right := c-1, c
	if c == 0 {
		left, right = 0, 1
	}
	a, b := n.children[left], n.children[right]
	if a.isLeaf() {
		if len(a.rows)+len(b.rows) > MaxRowsPerLeaf {
			return
		}
		a.rows = append(a.rows, b.rows...)
	} else {
		if len(a.children)+len(b.children) > MaxChildren {
			return
		}
		a.children = append(a.children, b.children...)
	}
	a.recomputeSummary()
	n.removeChild(right)
}

func (n *node) removeChild(c int) {
	copy(n.children[c:], n.children[c+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// mutate applies fn to row i and propagates the byte delta to every summary
// on the path. It returns the delta.
func (n *node) mutate(i int, fn func(*Row)) int {
	if n.isLeaf() {
		r := n.rows[i]
		before := r.bytes
		fn(r)
		delta := r.bytes - before
		n.summary.Bytes += delta
		return delta
	}

	c, j := n.locate(i)
	delta := n.children[c].mutate(j, fn)
	n.childSummaries[c].Bytes += delta
	n.summary.Bytes += delta
	return delta
}

// depth returns the height of the tallest path; used by tests to check balance.
func (n *node) depth() int {
	return int(n.height) + 1
}
