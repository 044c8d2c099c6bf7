package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benzoXdev/batclean/internal/engine"
)

func main() {
	// Clean exit on Ctrl+C
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Fprintf(os.Stderr, "\n%sInterrupted.%s\n", engine.Yellow, engine.Reset)
		os.Exit(130)
	}()

	start := time.Now()
	if code := engine.Main(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "%sDone in %s%s\n", engine.Gray, time.Since(start).Round(time.Millisecond), engine.Reset)
}
