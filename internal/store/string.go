package store

import "strconv"

// Set stores value as a String at key, always succeeding and clearing
// any prior TTL, regardless of the key's previous kind.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(key, &entry{kind: KindString, str: value})
}

// Get returns the String value at key. ok is false if key is absent.
// err is ErrWrongType if key holds a non-String value.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindString)
	if err != nil || !present {
		return "", false, err
	}
	return e.str, true, nil
}

// StrLen returns the length in bytes of the String at key, or 0 if
// absent. err is ErrWrongType if key holds a non-String value.
func (s *Store) StrLen(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindString)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	return len(e.str), nil
}

// Incr adds 1 to the integer value of the String at key, treating an
// absent key as "0". Returns ErrWrongType if key holds a non-String
// value, ErrNotInteger if the stored text isn't a base-10 signed 64-bit
// integer as strconv.ParseInt reads it (a leading '+' and leading zeros
// are accepted), or if applying the delta would overflow it.
func (s *Store) Incr(key string) (int64, error) {
	return s.incrBy(key, 1)
}

// Decr subtracts 1 from the integer value of the String at key. See
// Incr for absent-key and error semantics.
func (s *Store) Decr(key string) (int64, error) {
	return s.incrBy(key, -1)
}

func (s *Store) incrBy(key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, present, err := s.checkKindLocked(key, KindString)
	if err != nil {
		return 0, err
	}

	current := int64(0)
	if present {
		parsed, perr := strconv.ParseInt(e.str, 10, 64)
		if perr != nil {
			return 0, ErrNotInteger
		}
		current = parsed
	}

	next := current + delta
	if (delta > 0 && next < current) || (delta < 0 && next > current) {
		return 0, ErrNotInteger
	}

	s.data[key] = &entry{kind: KindString, str: strconv.FormatInt(next, 10)}
	return next, nil
}
