// Package command is the pure routing and validation layer: it matches
// a parsed command name to a handler, checks arity, invokes the
// keyspace operation, and translates the result into a wire.Reply. It
// holds no state of its own.
//
// Grounded on the teacher's controller.Processor.Process switch, but
// restructured as a data-driven table: this spec's arity contract is
// uniform enough (an exact count or a minimum) that the table replaces
// the teacher's per-command GetArgumentX boilerplate, which the
// teacher's own "//TODO: use go generate!" comments already flagged as
// repetitive.
package command

import (
	"fmt"

	"github.com/mshaverdo/respd/internal/store"
	"github.com/mshaverdo/respd/internal/wire"
)

// handlerFunc implements one command's behavior against the store.
type handlerFunc func(s *store.Store, args []string) wire.Reply

// spec bounds a command's argument count. maxArgs of -1 means
// unbounded.
type spec struct {
	minArgs int
	maxArgs int
	handler handlerFunc
}

var table map[string]spec

func init() {
	table = map[string]spec{
		"PING":      {0, 1, cmdPing},
		"GET":       {1, 1, cmdGet},
		"SET":       {2, 2, cmdSet},
		"INCR":      {1, 1, cmdIncr},
		"DECR":      {1, 1, cmdDecr},
		"STRLEN":    {1, 1, cmdStrLen},
		"DEL":       {1, -1, cmdDel},
		"EXISTS":    {1, -1, cmdExists},
		"EXPIRE":    {2, 2, cmdExpire},
		"PERSIST":   {1, 1, cmdPersist},
		"TTL":       {1, 1, cmdTTL},
		"KEYS":      {1, 1, cmdKeys},
		"TYPE":      {1, 1, cmdType},
		"RENAME":    {2, 2, cmdRename},
		"FLUSHALL":  {0, 0, cmdFlushAll},
		"LPUSH":     {2, -1, cmdLPush},
		"RPUSH":     {2, -1, cmdRPush},
		"LPOP":      {1, 1, cmdLPop},
		"RPOP":      {1, 1, cmdRPop},
		"LLEN":      {1, 1, cmdLLen},
		"LRANGE":    {3, 3, cmdLRange},
		"SADD":      {2, -1, cmdSAdd},
		"SREM":      {2, -1, cmdSRem},
		"SMEMBERS":  {1, 1, cmdSMembers},
		"SCARD":     {1, 1, cmdSCard},
		"SISMEMBER": {2, 2, cmdSIsMember},
		"HSET":      {3, -1, cmdHSet},
		"HGET":      {2, 2, cmdHGet},
		"HDEL":      {2, -1, cmdHDel},
		"HKEYS":     {1, 1, cmdHKeys},
		"HVALS":     {1, 1, cmdHVals},
		"HGETALL":   {1, 1, cmdHGetAll},
	}
}

// Dispatch routes cmd (already upper-cased by the wire parser) to its
// handler, after checking arity, and returns the reply to write back to
// the client. It never panics on malformed user input; "can't happen"
// internal states still panic via assert, recovered at the connection
// boundary.
func Dispatch(s *store.Store, cmd string, args []string) wire.Reply {
	sp, ok := table[cmd]
	if !ok {
		return wire.Error(fmt.Sprintf("unknown command '%s'", cmd))
	}

	if len(args) < sp.minArgs || (sp.maxArgs >= 0 && len(args) > sp.maxArgs) {
		return wire.Error("wrong number of arguments")
	}

	return sp.handler(s, args)
}
