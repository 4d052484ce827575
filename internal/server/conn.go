package server

import (
	"bufio"
	"io"
	"net"
	"strings"

	"github.com/mshaverdo/respd/internal/applog"
	"github.com/mshaverdo/respd/internal/command"
	"github.com/mshaverdo/respd/internal/store"
	"github.com/mshaverdo/respd/internal/wire"
)

// handleConn runs the per-connection read-dispatch-write loop: frame one
// command line at a time, invoke the dispatcher, write the reply, and
// tear down cleanly on EOF, I/O error, or a shutdown signal on stopChan.
//
// Grounded on the shape of the teacher's respserver.RespServer.handler
// callback, but reading lines directly off the net.Conn instead of
// delegating request framing to redcon (see DESIGN.md).
func handleConn(conn net.Conn, s *store.Store, stopChan <-chan struct{}) {
	defer conn.Close()

	defer func() {
		if r := recover(); r != nil {
			applog.Errorf("recovered from panic handling %s: %v", conn.RemoteAddr(), r)
		}
	}()

	// Close the socket as soon as shutdown is signalled, so a handler
	// blocked waiting for the next line wakes up and exits.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-stopChan:
			conn.Close()
		case <-done:
		}
	}()

	reader := bufio.NewReader(conn)

	for {
		select {
		case <-stopChan:
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				applog.Errorf("read error from %s: %s", conn.RemoteAddr(), err)
			}
			return
		}

		line = strings.TrimRight(line, "\r\n")

		cmd, args, parseErr := wire.ParseLine(line)
		if parseErr != nil {
			if _, err := conn.Write(wire.Error("syntax error").Encode()); err != nil {
				return
			}
			continue
		}
		if cmd == "" {
			// Empty line: no reply, per spec.
			continue
		}

		reply := command.Dispatch(s, cmd, args)

		if _, err := conn.Write(reply.Encode()); err != nil {
			applog.Errorf("write error to %s: %s", conn.RemoteAddr(), err)
			return
		}
	}
}
