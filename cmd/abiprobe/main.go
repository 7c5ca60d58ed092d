package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	abiprobe "github.com/wippyai/abi-probe"
)

func main() {
	var (
		debug       = flag.Bool("debug", false, "Log verification steps to stderr")
		interactive = flag.Bool("i", false, "Interactive inspector with TUI")
		output      = flag.String("o", "", "Write the report to a file instead of stdout")
	)
	flag.Parse()

	var logger *zap.Logger
	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
		abiprobe.SetLogger(l)
	}

	if *interactive {
		// The inspector owns the terminal; it never mixes with report bytes.
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w, closer, err := reportWriter(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sum := abiprobe.Run(w)

	if closer != nil {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if logger != nil {
		logger.Sync()
	}
	os.Exit(sum.ExitCode())
}

// reportWriter resolves the report destination: stdout by default, a
// freshly created file when -o names one. The returned closer is nil for
// stdout.
func reportWriter(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create report file: %w", err)
	}
	return f, f, nil
}
