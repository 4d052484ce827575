// Command respd runs the in-memory key-value server: it binds a TCP
// listener, dispatches RESP-flavored commands against a shared store,
// and shuts down cleanly on SIGINT/SIGTERM.
//
// Grounded on the teacher's cmd/radish-server/main.go flag and signal
// handling, with the WAL persistence and HTTP dual-mode flags dropped
// (see DESIGN.md).
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mshaverdo/respd/internal/applog"
	"github.com/mshaverdo/respd/internal/server"
)

func main() {
	var (
		host                        string
		port                        int
		sweepIntervalSeconds        int
		quiet, verbose, veryVerbose bool
	)

	flag.StringVar(&host, "h", "localhost", "The listening host.")
	flag.IntVar(&port, "p", 6379, "The listening port.")
	flag.IntVar(&sweepIntervalSeconds, "e", 1, "Active expiration sweep interval in seconds.")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging.")
	flag.BoolVar(&veryVerbose, "vv", false, "Enable very verbose logging.")
	flag.BoolVar(&quiet, "q", false, "Quiet logging. Totally silent.")
	flag.Parse()

	switch {
	case veryVerbose:
		applog.SetLevel(applog.DEBUG)
	case verbose:
		applog.SetLevel(applog.INFO)
	case quiet:
		applog.SetLevel(applog.CRITICAL - 1)
	default:
		applog.SetLevel(applog.NOTICE)
	}

	srv := server.New(host, port, time.Duration(sweepIntervalSeconds)*time.Second)

	go handleSignals(srv)

	if err := srv.ListenAndServe(); err != nil {
		applog.Criticalf("%s", err)
		os.Exit(1)
	}
}

func handleSignals(srv *server.Server) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for s := range sigs {
		switch s {
		case syscall.SIGINT, syscall.SIGTERM:
			srv.Shutdown()
			return
		}
	}
}
