package store

// HSet sets each field=value pair in the hash at key, creating key as an
// empty hash first if absent. Returns the count of fields that were
// newly created (as opposed to updated in place).
func (s *Store) HSet(key string, pairs [][2]string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return 0, err
	}
	if !present {
		e = &entry{kind: KindHash, hash: make(map[string]string)}
		s.data[key] = e
	}

	created := 0
	for _, pair := range pairs {
		field, value := pair[0], pair[1]
		if _, exists := e.hash[field]; !exists {
			created++
		}
		e.hash[field] = value
	}

	return created, nil
}

// HGet returns the value of field in the hash at key. ok is false if key
// or field is absent.
func (s *Store) HGet(key, field string) (value string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return "", false, err
	}
	if !present {
		return "", false, nil
	}
	v, found := e.hash[field]
	return v, found, nil
}

// HDel removes each of fields from the hash at key, returning the count
// actually removed. Deletes key if the hash becomes empty.
func (s *Store) HDel(key string, fields []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}

	removed := 0
	for _, f := range fields {
		if _, exists := e.hash[f]; exists {
			delete(e.hash, f)
			removed++
		}
	}
	s.dropIfEmptyLocked(key, e)

	return removed, nil
}

// HKeys returns all field names of the hash at key, or an empty slice if
// absent.
func (s *Store) HKeys(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return nil, err
	}
	if !present {
		return []string{}, nil
	}

	result := make([]string, 0, len(e.hash))
	for f := range e.hash {
		result = append(result, f)
	}
	return result, nil
}

// HVals returns all values of the hash at key, or an empty slice if
// absent.
func (s *Store) HVals(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return nil, err
	}
	if !present {
		return []string{}, nil
	}

	result := make([]string, 0, len(e.hash))
	for _, v := range e.hash {
		result = append(result, v)
	}
	return result, nil
}

// HGetAll returns all fields and values of the hash at key, interleaved
// as field, value, field, value, ..., or an empty slice if absent.
func (s *Store) HGetAll(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindHash)
	if err != nil {
		return nil, err
	}
	if !present {
		return []string{}, nil
	}

	result := make([]string, 0, len(e.hash)*2)
	for f, v := range e.hash {
		result = append(result, f, v)
	}
	return result, nil
}
