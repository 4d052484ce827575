package command

import (
	"errors"
	"strconv"

	"github.com/mshaverdo/respd/internal/store"
	"github.com/mshaverdo/respd/internal/wire"
)

// errorReply classifies an error returned from the store (or synthesized
// by this package) into one of spec.md §7's taxonomy members.
func errorReply(err error) wire.Reply {
	switch {
	case errors.Is(err, store.ErrWrongType):
		return wire.Error("wrong type")
	case errors.Is(err, store.ErrNotInteger):
		return wire.Error("value is not an integer or out of range")
	case errors.Is(err, ErrSyntax):
		return wire.Error("syntax error")
	default:
		return wire.Error(err.Error())
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, store.ErrNotInteger
	}
	return n, nil
}

func cmdPing(s *store.Store, args []string) wire.Reply {
	if len(args) == 1 {
		return wire.SimpleString(args[0])
	}
	return wire.SimpleString("PONG")
}

func cmdGet(s *store.Store, args []string) wire.Reply {
	v, ok, err := s.Get(args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return wire.NullBulk{}
	}
	return wire.SimpleString(v)
}

func cmdSet(s *store.Store, args []string) wire.Reply {
	s.Set(args[0], args[1])
	return wire.SimpleString("OK")
}

func cmdIncr(s *store.Store, args []string) wire.Reply {
	n, err := s.Incr(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(n)
}

func cmdDecr(s *store.Store, args []string) wire.Reply {
	n, err := s.Decr(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(n)
}

func cmdStrLen(s *store.Store, args []string) wire.Reply {
	n, err := s.StrLen(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdDel(s *store.Store, args []string) wire.Reply {
	return wire.Integer(int64(s.Delete(args...)))
}

func cmdExists(s *store.Store, args []string) wire.Reply {
	return wire.Integer(int64(s.ExistsCount(args)))
}

func cmdExpire(s *store.Store, args []string) wire.Reply {
	seconds, err := parseInt(args[1])
	if err != nil {
		return errorReply(err)
	}
	if s.SetExpiry(args[0], int64(seconds)) {
		return wire.Integer(1)
	}
	return wire.Integer(0)
}

func cmdPersist(s *store.Store, args []string) wire.Reply {
	if s.Persist(args[0]) {
		return wire.Integer(1)
	}
	return wire.Integer(0)
}

func cmdTTL(s *store.Store, args []string) wire.Reply {
	return wire.Integer(s.TTL(args[0]))
}

func cmdKeys(s *store.Store, args []string) wire.Reply {
	return wire.Array(s.KeysMatching(args[0]))
}

func cmdType(s *store.Store, args []string) wire.Reply {
	kind, _ := s.TypeOf(args[0])
	return wire.SimpleString(kind)
}

func cmdRename(s *store.Store, args []string) wire.Reply {
	if !s.Rename(args[0], args[1]) {
		return wire.Error("no such key")
	}
	return wire.SimpleString("OK")
}

func cmdFlushAll(s *store.Store, args []string) wire.Reply {
	s.FlushAll()
	return wire.SimpleString("OK")
}

func cmdLPush(s *store.Store, args []string) wire.Reply {
	n, err := s.LPush(args[0], args[1:])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdRPush(s *store.Store, args []string) wire.Reply {
	n, err := s.RPush(args[0], args[1:])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdLPop(s *store.Store, args []string) wire.Reply {
	v, ok, err := s.LPop(args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return wire.NullBulk{}
	}
	return wire.SimpleString(v)
}

func cmdRPop(s *store.Store, args []string) wire.Reply {
	v, ok, err := s.RPop(args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return wire.NullBulk{}
	}
	return wire.SimpleString(v)
}

func cmdLLen(s *store.Store, args []string) wire.Reply {
	n, err := s.LLen(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdLRange(s *store.Store, args []string) wire.Reply {
	start, err := parseInt(args[1])
	if err != nil {
		return errorReply(err)
	}
	stop, err := parseInt(args[2])
	if err != nil {
		return errorReply(err)
	}

	result, err := s.LRange(args[0], start, stop)
	if err != nil {
		return errorReply(err)
	}
	return wire.Array(result)
}

func cmdSAdd(s *store.Store, args []string) wire.Reply {
	n, err := s.SAdd(args[0], args[1:])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdSRem(s *store.Store, args []string) wire.Reply {
	n, err := s.SRem(args[0], args[1:])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdSMembers(s *store.Store, args []string) wire.Reply {
	members, err := s.SMembers(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Array(members)
}

func cmdSCard(s *store.Store, args []string) wire.Reply {
	n, err := s.SCard(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdSIsMember(s *store.Store, args []string) wire.Reply {
	ok, err := s.SIsMember(args[0], args[1])
	if err != nil {
		return errorReply(err)
	}
	if ok {
		return wire.Integer(1)
	}
	return wire.Integer(0)
}

func cmdHSet(s *store.Store, args []string) wire.Reply {
	fieldsAndValues := args[1:]
	if len(fieldsAndValues)%2 != 0 {
		return errorReply(ErrSyntax)
	}

	pairs := make([][2]string, 0, len(fieldsAndValues)/2)
	for i := 0; i < len(fieldsAndValues); i += 2 {
		pairs = append(pairs, [2]string{fieldsAndValues[i], fieldsAndValues[i+1]})
	}

	n, err := s.HSet(args[0], pairs)
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdHGet(s *store.Store, args []string) wire.Reply {
	v, ok, err := s.HGet(args[0], args[1])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return wire.NullBulk{}
	}
	return wire.SimpleString(v)
}

func cmdHDel(s *store.Store, args []string) wire.Reply {
	n, err := s.HDel(args[0], args[1:])
	if err != nil {
		return errorReply(err)
	}
	return wire.Integer(int64(n))
}

func cmdHKeys(s *store.Store, args []string) wire.Reply {
	keys, err := s.HKeys(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Array(keys)
}

func cmdHVals(s *store.Store, args []string) wire.Reply {
	vals, err := s.HVals(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Array(vals)
}

func cmdHGetAll(s *store.Store, args []string) wire.Reply {
	all, err := s.HGetAll(args[0])
	if err != nil {
		return errorReply(err)
	}
	return wire.Array(all)
}
