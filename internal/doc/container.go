package doc

// At looks up a child by member name via a linear scan comparing the
// query against each child's name (spec §4.D "by name"), returning the
// first match or the document's null sentinel.
func (v *Value) At(name string) *Value {
	for c := v.firstChild; c != nil; c = c.next {
		if matchesString(c.name, v.doc.width, name) {
			return c
		}
	}
	return v.doc.sentinel
}

// AtIndex looks up a child by position. Non-negative indices count from
// the first child forward; negative indices count from the last child
// backward (-1 = last). Out-of-range returns the null sentinel (spec
// §4.D "by index").
func (v *Value) AtIndex(i int) *Value {
	if i >= 0 {
		c := v.firstChild
		for n := 0; c != nil && n < i; n++ {
			c = c.next
		}
		if c == nil {
			return v.doc.sentinel
		}
		return c
	}
	c := v.lastChild
	for n := -1; c != nil && n > i; n-- {
		c = c.prev
	}
	if c == nil {
		return v.doc.sentinel
	}
	return c
}

// linkAppend appends child to the end of v's sibling list and sets its
// owner, unconditionally (callers validate first).
func (v *Value) linkAppend(child *Value) {
	child.owner = v
	child.prev = v.lastChild
	child.next = nil
	if v.lastChild != nil {
		v.lastChild.next = child
	} else {
		v.firstChild = child
	}
	v.lastChild = child
	v.childCount++
}

// linkBefore inserts child immediately before at (at must be a current
// child of v, or nil to mean "at the end").
func (v *Value) linkBefore(child, at *Value) {
	child.owner = v
	if at == nil {
		v.linkAppend(child)
		return
	}
	child.next = at
	child.prev = at.prev
	if at.prev != nil {
		at.prev.next = child
	} else {
		v.firstChild = child
	}
	at.prev = child
	v.childCount++
}

// unlink detaches child from its owner's sibling list, without touching
// child.owner (callers set that).
func (v *Value) unlink(child *Value) {
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		v.firstChild = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		v.lastChild = child.prev
	}
	child.prev, child.next = nil, nil
	v.childCount--
}

// nthFromFront returns the child at 0-based position n, or nil.
func (v *Value) nthFromFront(n int) *Value {
	c := v.firstChild
	for i := 0; c != nil && i < n; i++ {
		c = c.next
	}
	return c
}

// validNewChild reports whether child can be attached anywhere: it must
// be non-nil, not the null sentinel, and not already owned (spec §3
// invariant 1, §4.D array_add/object_set preconditions).
func (v *Value) validNewChild(child *Value) bool {
	return child != nil && !v.doc.IsSentinel(child) && child.owner == nil
}

// ArrayAdd appends v (the receiver must be an array) to the end. Fails
// if the receiver is not an array, child is nil/the sentinel, or child
// already has an owner.
func (v *Value) ArrayAdd(child *Value) bool {
	if v.kind != KindArray || !v.validNewChild(child) {
		return false
	}
	v.linkAppend(child)
	return true
}

// clampInsertIndex maps the signed, possibly extreme index of
// array_insert to a 0-based "insert before this many existing children"
// position, per spec §4.D: negative i counts from the end (-1 inserts
// before the current last, math.MinInt32 inserts before the first);
// non-negative i inserts after that many items (math.MaxInt32 appends).
func clampInsertIndex(i, count int) int {
	if i >= 0 {
		if i > count {
			return count
		}
		return i
	}
	// i < 0: -1 means "before last" => position count-1
	pos := count + i
	if pos < 0 {
		return 0
	}
	return pos
}

// ArrayInsert inserts child at a clamped position, per clampInsertIndex.
// Fails under the same preconditions as ArrayAdd.
func (v *Value) ArrayInsert(child *Value, i int) bool {
	if v.kind != KindArray || !v.validNewChild(child) {
		return false
	}
	pos := clampInsertIndex(i, v.childCount)
	at := v.nthFromFront(pos)
	v.linkBefore(child, at)
	return true
}

// ArrayRemove detaches and returns the child at a clamped index (same
// clamping as ArrayInsert/array_insert), or the sentinel if the
// container is empty or not an array.
func (v *Value) ArrayRemove(i int) *Value {
	if v.kind != KindArray || v.childCount == 0 {
		return v.doc.sentinel
	}
	pos := clampInsertIndex(i, v.childCount)
	target := v.nthFromFront(pos)
	if target == nil {
		return v.doc.sentinel
	}
	v.unlink(target)
	target.owner = nil
	return target
}

// ArraySet replaces the child at exactly index i with child; if
// i == ChildCount it appends instead. Any other index fails. This
// narrows the looser (and, per spec §9, possibly buggy) source behavior
// to a strict replace-or-append-at-end. Returns the replaced child (nil
// if this was an append), and whether the operation succeeded.
func (v *Value) ArraySet(i int, child *Value) (old *Value, ok bool) {
	if v.kind != KindArray || !v.validNewChild(child) {
		return nil, false
	}
	if i < 0 || i > v.childCount {
		return nil, false
	}
	if i == v.childCount {
		v.linkAppend(child)
		return nil, true
	}
	target := v.nthFromFront(i)
	child.owner = v
	child.prev, child.next = target.prev, target.next
	if target.prev != nil {
		target.prev.next = child
	} else {
		v.firstChild = child
	}
	if target.next != nil {
		target.next.prev = child
	} else {
		v.lastChild = child
	}
	target.prev, target.next, target.owner = nil, nil, nil
	return target, true
}

// ObjectSet inserts or replaces the member named name with child. If a
// child with the same name exists, it is unlinked and returned as old
// and child takes its exact slot (same links); otherwise child is
// appended. Fails (nil, false) if the receiver is not an object, name is
// empty, or child is nil/the sentinel/already owned.
func (v *Value) ObjectSet(name string, child *Value) (old *Value, ok bool) {
	if v.kind != KindObject || name == "" || !v.validNewChild(child) {
		return nil, false
	}
	child.name = v.doc.allocText(name)
	for c := v.firstChild; c != nil; c = c.next {
		if matchesString(c.name, v.doc.width, name) {
			child.owner = v
			child.prev, child.next = c.prev, c.next
			if c.prev != nil {
				c.prev.next = child
			} else {
				v.firstChild = child
			}
			if c.next != nil {
				c.next.prev = child
			} else {
				v.lastChild = child
			}
			c.prev, c.next, c.owner = nil, nil, nil
			return c, true
		}
	}
	v.linkAppend(child)
	return nil, true
}

// ObjectRemove detaches and returns the first member named name, or nil
// if not found (spec §9 Open Question 2: the source's bool-on-empty-name
// return is narrowed to null here, uniformly for "not found").
func (v *Value) ObjectRemove(name string) *Value {
	if v.kind != KindObject || name == "" {
		return nil
	}
	for c := v.firstChild; c != nil; c = c.next {
		if matchesString(c.name, v.doc.width, name) {
			v.unlink(c)
			c.owner = nil
			return c
		}
	}
	return nil
}

// RemoveAll detaches every child, clearing their owners, leaving v an
// empty container.
func (v *Value) RemoveAll() {
	for c := v.firstChild; c != nil; {
		next := c.next
		c.prev, c.next, c.owner = nil, nil, nil
		c = next
	}
	v.firstChild, v.lastChild, v.childCount = nil, nil, 0
}

// AppendChild appends child (already-encoded name bytes, or nil for
// array elements) during parsing, funneling through the same linkAppend
// primitive ArrayAdd and the append branch of ObjectSet use (spec §4.E:
// "Children are appended in parse order via the same add_child primitive
// the mutation API uses"). Unlike ObjectSet, it performs no name-dedup
// scan: object construction does not enforce name uniqueness (spec §3
// invariant 3), only object_set does.
func (v *Value) AppendChild(child *Value, name []byte) bool {
	if !v.validNewChild(child) {
		return false
	}
	child.name = name
	v.linkAppend(child)
	return true
}
