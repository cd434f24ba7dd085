package Trees

import "github.com/codifire/glare"

// A node of the BTree. keys and vals have length MAXKEYS=order-1 and kids
// has length order; only the first n keys and, for internal nodes, the
// first n+1 kids are meaningful. A leaf has every kid nil.
type bnode[K, V any] struct {
	n    int
	keys []K
	vals []V
	kids []*bnode[K, V]
}

func (u *bnode[K, V]) leaf() bool {
	return u.kids[0] == nil
}

func (u *bnode[K, V]) full() bool {
	return u.n == len(u.keys)
}

// findKeyPosition returns the smallest pos with keys[pos]>=k, and whether
// keys[pos]==k. Binary search.
// Time: O(log order)
func (u *bnode[K, V]) findKeyPosition(k K, cmp func(K, K) int) (int, bool) {
	lo, hi := 0, u.n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(u.keys[mid], k) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < u.n && cmp(u.keys[lo], k) == 0
}

// insertAt puts (k, v) at pos with right as its right branch, shifting the
// entries from pos on one slot to the right. The node must not be full.
// Time: O(order)
func (u *bnode[K, V]) insertAt(pos int, k K, v V, right *bnode[K, V]) {
	glare.Assert(!u.full(), "insert into a full node")
	copy(u.keys[pos+1:u.n+1], u.keys[pos:u.n])
	copy(u.vals[pos+1:u.n+1], u.vals[pos:u.n])
	copy(u.kids[pos+2:u.n+2], u.kids[pos+1:u.n+1])
	u.keys[pos], u.vals[pos], u.kids[pos+1] = k, v, right
	u.n++
}

// clearFrom zeroes the entries from i on so that the node holds no stale
// references, and the branches right of them.
func (u *bnode[K, V]) clearFrom(i int) {
	clear(u.keys[i:])
	clear(u.vals[i:])
	clear(u.kids[i+1:])
}

// splitInsertAt inserts (k, v, right) at pos into the full node u while
// dividing u's entries with the empty node out. The new entry lands in the
// left half when pos<=order/2, otherwise in the right half. The largest
// entry of the left half is then taken out of u and returned as the median;
// out becomes the median's right branch and u its left one.
// Time: O(order)
func (u *bnode[K, V]) splitInsertAt(pos int, k K, v V, right, out *bnode[K, V]) (K, V) {
	glare.Assert(u.full(), "split of a node that is not full")
	glare.Assert(out.n == 0, "split into a node that is not empty")
	maxKeys := len(u.keys)
	mid := len(u.kids) / 2
	if pos > mid {
		mid++
	}
	out.n = copy(out.keys, u.keys[mid:maxKeys])
	copy(out.vals, u.vals[mid:maxKeys])
	copy(out.kids[1:], u.kids[mid+1:maxKeys+1])
	u.n = mid
	u.clearFrom(mid)
	if pos <= len(u.kids)/2 {
		u.insertAt(pos, k, v, right)
	} else {
		out.insertAt(pos-mid, k, v, right)
	}
	med := u.n - 1
	mk, mv := u.keys[med], u.vals[med]
	out.kids[0] = u.kids[med+1]
	u.n = med
	u.clearFrom(med)
	return mk, mv
}

// shiftLeft moves the entries from beg on one slot to the left, overwriting
// the entry at beg-1 and its left branch.
// Time: O(order)
func (u *bnode[K, V]) shiftLeft(beg int) {
	glare.Assert(beg > 0 && beg <= u.n, "shift left from %d out of [1,%d]", beg, u.n)
	copy(u.keys[beg-1:], u.keys[beg:u.n])
	copy(u.vals[beg-1:], u.vals[beg:u.n])
	copy(u.kids[beg-1:], u.kids[beg:u.n+1])
	u.n--
	u.clearFrom(u.n)
}

// removeLeafData deletes the entry at i of a leaf.
// Time: O(order)
func (u *bnode[K, V]) removeLeafData(i int) {
	glare.Assert(u.kids[i] == nil, "leaf removal on an internal node")
	u.shiftLeft(i + 1)
}

// moveLeft rotates one entry from kids[right] through the separator
// keys[right-1] into kids[right-1]. kids[right] must have more than minKeys
// entries.
// Time: O(order)
func (u *bnode[K, V]) moveLeft(right, minKeys int) {
	sep := right - 1
	l, r := u.kids[sep], u.kids[right]
	glare.Assert(r.n > minKeys, "borrow from a right sibling with %d keys", r.n)
	l.keys[l.n], l.vals[l.n] = u.keys[sep], u.vals[sep]
	l.n++
	l.kids[l.n] = r.kids[0]
	u.keys[sep], u.vals[sep] = r.keys[0], r.vals[0]
	r.shiftLeft(1)
}

// moveRight rotates one entry from kids[left] through the separator
// keys[left] into kids[left+1]. kids[left] must have more than minKeys
// entries.
// Time: O(order)
func (u *bnode[K, V]) moveRight(left, minKeys int) {
	l, r := u.kids[left], u.kids[left+1]
	glare.Assert(l.n > minKeys, "borrow from a left sibling with %d keys", l.n)
	copy(r.keys[1:r.n+1], r.keys[:r.n])
	copy(r.vals[1:r.n+1], r.vals[:r.n])
	copy(r.kids[1:r.n+2], r.kids[:r.n+1])
	r.keys[0], r.vals[0], r.kids[0] = u.keys[left], u.vals[left], l.kids[l.n]
	r.n++
	l.n--
	u.keys[left], u.vals[left] = l.keys[l.n], l.vals[l.n]
	l.clearFrom(l.n)
}

// combine appends the separator keys[right-1] and every entry of
// kids[right] to kids[right-1], then drops the separator and kids[right]
// from u. Returns the emptied right node for the caller to release.
// Time: O(order)
func (u *bnode[K, V]) combine(right int) *bnode[K, V] {
	sep := right - 1
	l, r := u.kids[sep], u.kids[right]
	glare.Assert(l.n+r.n < len(l.keys), "combine of %d and %d keys overflows", l.n, r.n)
	l.keys[l.n], l.vals[l.n] = u.keys[sep], u.vals[sep]
	l.n++
	copy(l.keys[l.n:], r.keys[:r.n])
	copy(l.vals[l.n:], r.vals[:r.n])
	copy(l.kids[l.n:], r.kids[:r.n+1])
	l.n += r.n
	copy(u.keys[sep:], u.keys[right:u.n])
	copy(u.vals[sep:], u.vals[right:u.n])
	copy(u.kids[right:], u.kids[right+1:u.n+1])
	u.n--
	u.clearFrom(u.n)
	return r
}

// copyInPredecessor overwrites the entry at i with the greatest entry of
// the subtree kids[i]. Returns the copied key.
// Time: O(D)
func (u *bnode[K, V]) copyInPredecessor(i int) K {
	cur := u.kids[i]
	for cur.kids[cur.n] != nil {
		cur = cur.kids[cur.n]
	}
	u.keys[i], u.vals[i] = cur.keys[cur.n-1], cur.vals[cur.n-1]
	return u.keys[i]
}
