package command

import (
	"testing"

	"github.com/mshaverdo/respd/internal/store"
	"github.com/mshaverdo/respd/internal/wire"
)

func encode(r wire.Reply) string {
	return string(r.Encode())
}

func TestUnknownCommand(t *testing.T) {
	s := store.New()
	got := encode(Dispatch(s, "NOSUCHCMD", nil))
	want := "-ERR unknown command 'NOSUCHCMD'\r\n"
	if got != want {
		t.Errorf("Dispatch() = %q; want %q", got, want)
	}
}

func TestArityError(t *testing.T) {
	s := store.New()
	got := encode(Dispatch(s, "GET", nil))
	want := "-ERR wrong number of arguments\r\n"
	if got != want {
		t.Errorf("Dispatch() = %q; want %q", got, want)
	}
}

func TestWrongTypeError(t *testing.T) {
	s := store.New()
	Dispatch(s, "LPUSH", []string{"k", "a"})

	got := encode(Dispatch(s, "GET", []string{"k"}))
	want := "-ERR wrong type\r\n"
	if got != want {
		t.Errorf("Dispatch() = %q; want %q", got, want)
	}
}

func TestIncrNonNumericError(t *testing.T) {
	s := store.New()
	Dispatch(s, "SET", []string{"k", "notanumber"})

	got := encode(Dispatch(s, "INCR", []string{"k"}))
	want := "-ERR value is not an integer or out of range\r\n"
	if got != want {
		t.Errorf("Dispatch() = %q; want %q", got, want)
	}
}

func TestHSetOddArgsIsSyntaxError(t *testing.T) {
	s := store.New()
	got := encode(Dispatch(s, "HSET", []string{"h", "f1", "v1", "f2"}))
	want := "-ERR syntax error\r\n"
	if got != want {
		t.Errorf("Dispatch() = %q; want %q", got, want)
	}
}

// Scenario 1 of spec.md §8.
func TestScenarioSetGetIncr(t *testing.T) {
	s := store.New()
	if got := encode(Dispatch(s, "SET", []string{"name", "PyRedis"})); got != "+OK\r\n" {
		t.Fatalf("SET = %q", got)
	}
	if got := encode(Dispatch(s, "GET", []string{"name"})); got != "+PyRedis\r\n" {
		t.Fatalf("GET = %q", got)
	}
	if got := encode(Dispatch(s, "SET", []string{"counter", "10"})); got != "+OK\r\n" {
		t.Fatalf("SET = %q", got)
	}
	if got := encode(Dispatch(s, "INCR", []string{"counter"})); got != ":11\r\n" {
		t.Fatalf("INCR = %q", got)
	}
}

// Scenario 2 of spec.md §8.
func TestScenarioListPushRangePop(t *testing.T) {
	s := store.New()
	if got := encode(Dispatch(s, "LPUSH", []string{"mylist", "a", "b", "c"})); got != ":3\r\n" {
		t.Fatalf("LPUSH = %q", got)
	}
	if got := encode(Dispatch(s, "LRANGE", []string{"mylist", "0", "-1"})); got != "*3\r\n+c\r\n+b\r\n+a\r\n" {
		t.Fatalf("LRANGE = %q", got)
	}
	if got := encode(Dispatch(s, "RPOP", []string{"mylist"})); got != "+a\r\n" {
		t.Fatalf("RPOP = %q", got)
	}
}

// Scenario 3 of spec.md §8.
func TestScenarioSets(t *testing.T) {
	s := store.New()
	if got := encode(Dispatch(s, "SADD", []string{"fruits", "apple", "banana", "cherry"})); got != ":3\r\n" {
		t.Fatalf("SADD = %q", got)
	}
	if got := encode(Dispatch(s, "SISMEMBER", []string{"fruits", "apple"})); got != ":1\r\n" {
		t.Fatalf("SISMEMBER = %q", got)
	}
	if got := encode(Dispatch(s, "SREM", []string{"fruits", "banana"})); got != ":1\r\n" {
		t.Fatalf("SREM = %q", got)
	}
	if got := encode(Dispatch(s, "SCARD", []string{"fruits"})); got != ":2\r\n" {
		t.Fatalf("SCARD = %q", got)
	}
}

// Scenario 4 of spec.md §8.
func TestScenarioHash(t *testing.T) {
	s := store.New()
	got := encode(Dispatch(s, "HSET", []string{"user", "name", "John", "age", "30", "city", "NYC"}))
	if got != ":3\r\n" {
		t.Fatalf("HSET = %q", got)
	}
	if got := encode(Dispatch(s, "HGET", []string{"user", "name"})); got != "+John\r\n" {
		t.Fatalf("HGET = %q", got)
	}

	all := Dispatch(s, "HGETALL", []string{"user"}).(wire.Array)
	if len(all) != 6 {
		t.Fatalf("HGETALL length = %d; want 6", len(all))
	}
}

// Scenario 6 of spec.md §8.
func TestScenarioPushPopExists(t *testing.T) {
	s := store.New()
	if got := encode(Dispatch(s, "LPUSH", []string{"L", "a"})); got != ":1\r\n" {
		t.Fatalf("LPUSH = %q", got)
	}
	if got := encode(Dispatch(s, "LPOP", []string{"L"})); got != "+a\r\n" {
		t.Fatalf("LPOP = %q", got)
	}
	if got := encode(Dispatch(s, "EXISTS", []string{"L"})); got != ":0\r\n" {
		t.Fatalf("EXISTS = %q", got)
	}
}

func TestExpireZeroOrNegativeDeletesImmediately(t *testing.T) {
	s := store.New()
	Dispatch(s, "SET", []string{"tmp", "x"})

	if got := encode(Dispatch(s, "EXPIRE", []string{"tmp", "0"})); got != ":1\r\n" {
		t.Fatalf("EXPIRE = %q", got)
	}
	if got := encode(Dispatch(s, "EXISTS", []string{"tmp"})); got != ":0\r\n" {
		t.Fatalf("EXISTS = %q", got)
	}
}

func TestFlushAllThenKeys(t *testing.T) {
	s := store.New()
	Dispatch(s, "SET", []string{"a", "1"})
	Dispatch(s, "FLUSHALL", nil)

	if got := encode(Dispatch(s, "KEYS", []string{"*"})); got != "*0\r\n" {
		t.Fatalf("KEYS = %q", got)
	}
}

func TestPingWithAndWithoutMessage(t *testing.T) {
	s := store.New()
	if got := encode(Dispatch(s, "PING", nil)); got != "+PONG\r\n" {
		t.Fatalf("PING = %q", got)
	}
	if got := encode(Dispatch(s, "PING", []string{"hello"})); got != "+hello\r\n" {
		t.Fatalf("PING hello = %q", got)
	}
}
