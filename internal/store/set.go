package store

// SAdd adds each of members to the set at key, creating key as an empty
// set first if absent. Returns the count of members that weren't
// already present.
func (s *Store) SAdd(key string, members []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindSet)
	if err != nil {
		return 0, err
	}
	if !present {
		e = &entry{kind: KindSet, set: make(map[string]struct{})}
		s.data[key] = e
	}

	added := 0
	for _, m := range members {
		if _, exists := e.set[m]; !exists {
			e.set[m] = struct{}{}
			added++
		}
	}

	return added, nil
}

// SRem removes each of members from the set at key, returning the count
// actually removed. Deletes key if the set becomes empty.
func (s *Store) SRem(key string, members []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindSet)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}

	removed := 0
	for _, m := range members {
		if _, exists := e.set[m]; exists {
			delete(e.set, m)
			removed++
		}
	}
	s.dropIfEmptyLocked(key, e)

	return removed, nil
}

// SMembers returns the members of the set at key, in unspecified order,
// or an empty slice if absent.
func (s *Store) SMembers(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindSet)
	if err != nil {
		return nil, err
	}
	if !present {
		return []string{}, nil
	}

	result := make([]string, 0, len(e.set))
	for m := range e.set {
		result = append(result, m)
	}
	return result, nil
}

// SCard returns the cardinality of the set at key, or 0 if absent.
func (s *Store) SCard(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindSet)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	return len(e.set), nil
}

// SIsMember reports whether member is in the set at key.
func (s *Store) SIsMember(key, member string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindSet)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	_, ok := e.set[member]
	return ok, nil
}
