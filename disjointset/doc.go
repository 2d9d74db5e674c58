// Package disjointset provides a fixed-size Disjoint-Set (Union-Find) over
// dense integer ids 0..n-1.
//
// What & Why
//
//   - A DisjointSet partitions n elements into groups and answers "are x and y
//     in the same group?" in near-constant amortized time.
//   - The shuffling engines use it for exactly one question: does a candidate
//     set of |V|-1 "last edges" connect every vertex of the k-let graph into a
//     single component?
//
// Guarantees
//
//   - Find uses iterative path halving (no recursion, no deep stacks).
//   - Union merges by size, bounding tree height by O(log n).
//   - GroupCount is maintained incrementally in O(1).
//
// Contract
//
//   - The element count is fixed at construction: no removal, no resizing.
//   - Ids outside [0, n) are programming errors and panic, the same way an
//     out-of-range slice index does. Map labels to dense ids before use.
//   - A DisjointSet is not safe for concurrent mutation.
//
// Complexity: O(n) to construct, O(α(n)) amortized per Find / Union.
package disjointset
