package disjointset

import "fmt"

// DisjointSet tracks a partition of the ids 0..n-1.
//
// parent[x] == x marks a root; size[r] is only meaningful for roots.
type DisjointSet struct {
	parent []int
	size   []int
	groups int
}

// New returns a DisjointSet of n singleton groups.
// A negative n panics.
//
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("disjointset: negative size %d", n))
	}

	var d = &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		groups: n,
	}
	var i int
	for i = 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements the set was created with.
func (d *DisjointSet) Len() int { return len(d.parent) }

// GroupCount returns the number of disjoint groups.
func (d *DisjointSet) GroupCount() int { return d.groups }

// Find returns the representative of the group containing x.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) int {
	d.check(x)
	// Walk up until the root, pointing every visited node at its grandparent.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the groups containing x and y.
// It reports whether a merge happened (false when already joined).
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) bool {
	var rootX, rootY = d.Find(x), d.Find(y)
	if rootX == rootY {
		return false
	}
	// Attach the smaller tree under the larger root.
	if d.size[rootX] < d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	d.groups--

	return true
}

// Connected reports whether x and y belong to the same group.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// SizeOf returns the number of elements in the group containing x.
func (d *DisjointSet) SizeOf(x int) int {
	return d.size[d.Find(x)]
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("disjointset: id %d out of range [0,%d)", x, len(d.parent)))
	}
}
