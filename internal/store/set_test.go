package store

import "testing"

func TestSAddIdempotence(t *testing.T) {
	s := New()

	n, err := s.SAdd("fruits", []string{"apple"})
	if err != nil || n != 1 {
		t.Fatalf("first SAdd() = %d, %v; want 1, nil", n, err)
	}

	n, err = s.SAdd("fruits", []string{"apple"})
	if err != nil || n != 0 {
		t.Fatalf("second SAdd() = %d, %v; want 0, nil", n, err)
	}

	card, err := s.SCard("fruits")
	if err != nil || card != 1 {
		t.Fatalf("SCard() = %d, %v; want 1, nil", card, err)
	}
}

func TestSAddSRemSCardSIsMember(t *testing.T) {
	s := New()
	n, err := s.SAdd("fruits", []string{"apple", "banana", "cherry"})
	if err != nil || n != 3 {
		t.Fatalf("SAdd() = %d, %v; want 3, nil", n, err)
	}

	isMember, err := s.SIsMember("fruits", "apple")
	if err != nil || !isMember {
		t.Fatalf("SIsMember(apple) = %v, %v; want true, nil", isMember, err)
	}

	removed, err := s.SRem("fruits", []string{"banana"})
	if err != nil || removed != 1 {
		t.Fatalf("SRem(banana) = %d, %v; want 1, nil", removed, err)
	}

	card, err := s.SCard("fruits")
	if err != nil || card != 2 {
		t.Fatalf("SCard() = %d, %v; want 2, nil", card, err)
	}
}

func TestSRemAbsentMemberIsNoop(t *testing.T) {
	s := New()
	s.SAdd("s", []string{"a"})

	removed, err := s.SRem("s", []string{"not-there"})
	if err != nil || removed != 0 {
		t.Fatalf("SRem(not-there) = %d, %v; want 0, nil", removed, err)
	}
}

func TestSRemEmptiesAndDeletesKey(t *testing.T) {
	s := New()
	s.SAdd("s", []string{"a"})
	s.SRem("s", []string{"a"})

	if s.Exists("s") {
		t.Fatalf("set key should be deleted once empty")
	}
}

func TestSMembersAbsent(t *testing.T) {
	s := New()
	got, err := s.SMembers("missing")
	if err != nil || len(got) != 0 {
		t.Fatalf("SMembers(missing) = %v, %v; want empty, nil", got, err)
	}
}

func TestSAddWrongType(t *testing.T) {
	s := New()
	s.Set("k", "v")
	if _, err := s.SAdd("k", []string{"x"}); err != ErrWrongType {
		t.Fatalf("SAdd on string key err = %v; want ErrWrongType", err)
	}
}
