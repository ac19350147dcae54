package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/idna"
)

func main() {
	var (
		domain      = flag.String("domain", "", "Domain name to convert")
		toUnicode   = flag.Bool("unicode", false, "Convert to Unicode form instead of ASCII")
		classify    = flag.Bool("classify", false, "Print per-label classification")
		validate    = flag.Bool("validate", false, "Run strict per-label validation before converting")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		idna.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *domain != "" {
		if err := run(*domain, *toUnicode, *classify, *validate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// With no -domain and stdin coming from a pipe, convert one domain
	// per line.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Usage: idnaconv -domain <name> [-unicode] [-classify] [-validate]")
		fmt.Fprintln(os.Stderr, "       idnaconv -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       <pipe> | idnaconv [-unicode]  (one domain per line)")
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := run(line, *toUnicode, *classify, *validate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(domain string, toUnicode, classify, validate bool) error {
	if validate {
		if err := idna.ValidateDomain(domain); err != nil {
			return err
		}
	}

	var result string
	var err error
	if toUnicode {
		result, err = idna.ToUnicode(domain)
	} else {
		result, err = idna.ToASCII(domain)
	}
	if err != nil {
		return err
	}
	fmt.Println(result)

	if classify {
		for _, label := range strings.Split(domain, ".") {
			fmt.Printf("  %-24s %s\n", label, classifyLabel(label))
		}
	}
	return nil
}

func classifyLabel(label string) string {
	switch {
	case idna.IsALabel(label):
		return "A-label"
	case idna.IsULabel(label):
		return "U-label"
	default:
		return "NR-LDH-label"
	}
}
