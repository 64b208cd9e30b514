package bktree

// Metric computes an integer distance between two values. Implementations
// must satisfy the metric-space axioms: non-negativity, symmetry, identity of
// indiscernibles, and the triangle inequality. Query pruning relies on the
// triangle inequality; a sloppy metric silently drops results.
type Metric[T any] interface {
	Distance(a, b T) int
}

// Match pairs a stored item with its distance to the query target.
type Match[T any] struct {
	Distance int
	Item     T
}

type node[T any] struct {
	item     T
	children map[int]*node[T]
}

// Tree indexes items under a Metric for bounded-radius lookups.
type Tree[T any] struct {
	metric Metric[T]
	root   *node[T]
	size   int
}

// New returns an empty tree using the provided metric.
func New[T any](metric Metric[T]) *Tree[T] {
	return &Tree[T]{metric: metric}
}

// Len reports the number of items stored in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Insert adds one item to the tree.
func (t *Tree[T]) Insert(item T) {
	t.size++
	if t.root == nil {
		t.root = &node[T]{item: item}
		return
	}

	current := t.root
	for {
		d := t.metric.Distance(current.item, item)
		if current.children == nil {
			current.children = make(map[int]*node[T])
		}
		child, ok := current.children[d]
		if !ok {
			current.children[d] = &node[T]{item: item}
			return
		}
		current = child
	}
}

// InsertAll adds every item in order.
func (t *Tree[T]) InsertAll(items []T) {
	for _, item := range items {
		t.Insert(item)
	}
}

// FindWithin returns every stored item whose distance to target is at most
// radius, in traversal order. The result is unsorted; callers that need the
// closest match select it from the returned slice. An empty tree yields nil.
func (t *Tree[T]) FindWithin(target T, radius int) []Match[T] {
	if t.root == nil || radius < 0 {
		return nil
	}

	var found []Match[T]
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := t.metric.Distance(current.item, target)
		if d <= radius {
			found = append(found, Match[T]{Distance: d, Item: current.item})
		}
		// Triangle inequality: a child at bucket distance b can only hold
		// matches when |b - d| <= radius.
		for bucket, child := range current.children {
			if bucket >= d-radius && bucket <= d+radius {
				stack = append(stack, child)
			}
		}
	}
	return found
}
