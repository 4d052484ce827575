package store

// LPush inserts each of values at the head of the list at key, one at a
// time in argument order, so LPush(key, []string{"a","b","c"}) leaves
// the list "c b a" (genuine-Redis push-each-to-head convention — see
// DESIGN.md's resolution of spec.md §9's open question). Creates the key
// as an empty list first if absent. Returns the new length.
func (s *Store) LPush(key string, values []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return 0, err
	}
	if !present {
		e = &entry{kind: KindList}
		s.data[key] = e
	}

	for _, v := range values {
		e.list = append([]string{v}, e.list...)
	}

	return len(e.list), nil
}

// RPush inserts each of values at the tail of the list at key, in
// argument order. Creates the key as an empty list first if absent.
// Returns the new length.
func (s *Store) RPush(key string, values []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return 0, err
	}
	if !present {
		e = &entry{kind: KindList}
		s.data[key] = e
	}

	e.list = append(e.list, values...)

	return len(e.list), nil
}

// LPop removes and returns the head element of the list at key. ok is
// false if key is absent or the list is empty (which never happens
// in a live key, since empty lists are deleted on last pop). Deletes
// key if the list becomes empty.
func (s *Store) LPop(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return "", false, err
	}
	if !present || len(e.list) == 0 {
		return "", false, nil
	}

	v := e.list[0]
	e.list = e.list[1:]
	s.dropIfEmptyLocked(key, e)

	return v, true, nil
}

// RPop removes and returns the tail element of the list at key. See
// LPop for absent/empty semantics.
func (s *Store) RPop(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return "", false, err
	}
	if !present || len(e.list) == 0 {
		return "", false, nil
	}

	last := len(e.list) - 1
	v := e.list[last]
	e.list = e.list[:last]
	s.dropIfEmptyLocked(key, e)

	return v, true, nil
}

// LLen returns the length of the list at key, or 0 if absent.
func (s *Store) LLen(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	return len(e.list), nil
}

// LRange returns the inclusive range [start, stop] of the list at key,
// with negative indices counting from the tail (-1 = last element).
// After clamping to the list's bounds, an empty or out-of-order range
// yields an empty slice rather than an error.
func (s *Store) LRange(key string, start, stop int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindList)
	if err != nil {
		return nil, err
	}
	if !present || len(e.list) == 0 {
		return []string{}, nil
	}

	length := len(e.list)
	start, stop = normalizeRange(length, start, stop)
	if start > stop {
		return []string{}, nil
	}

	result := make([]string, stop-start+1)
	copy(result, e.list[start:stop+1])
	return result, nil
}

// normalizeRange resolves possibly-negative, possibly-out-of-bounds
// start/stop indices against a collection of the given length.
func normalizeRange(length, start, stop int) (int, int) {
	if start < 0 {
		start += length
	}
	if start < 0 {
		start = 0
	}
	if stop < 0 {
		stop += length
	}
	if stop >= length {
		stop = length - 1
	}
	if start >= length {
		start = length
	}
	return start, stop
}
