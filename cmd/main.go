//go:build linux

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-rawcall"
	"github.com/carved4/go-rawcall/pkg/abi"
	"github.com/carved4/go-rawcall/pkg/config"
	rcerrors "github.com/carved4/go-rawcall/pkg/errors"
	"github.com/carved4/go-rawcall/pkg/log"
)

var (
	arch        string
	elfPath     string
	format      string
	dump        bool
	selftest    bool
	interactive bool
)

func init() {
	cfg := config.Load()

	pflag.StringVarP(&arch, "arch", "a", "", "Convention to show (Values: "+strings.Join(abi.Arches(), ", ")+". Default: native)")
	pflag.StringVarP(&elfPath, "elf", "e", "", "Show the convention an ELF binary traps with")
	pflag.StringVarP(&format, "format", "f", cfg.Format, "Format of the output (Values: 'table', 'json')")
	pflag.BoolVar(&dump, "dump", false, "Dump the convention with go-spew")
	pflag.BoolVar(&selftest, "selftest", false, "Run a few known syscalls through every entry point")
	pflag.BoolVarP(&interactive, "interactive", "i", false, "Read 'nr arg...' lines from stdin and issue them")
}

func main() {
	pflag.Parse()

	if err := run(); err != nil {
		log.L.Error("rawcall failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	switch {
	case selftest:
		if !runSelftest(os.Stdout) {
			return errors.New("selftest failed")
		}
		return nil
	case interactive:
		return repl(os.Stdin, os.Stdout)
	}

	conv, err := pick()
	if err != nil {
		return err
	}
	if dump {
		spew.Fdump(os.Stdout, conv)
		return nil
	}
	return show(os.Stdout, conv, format)
}

func pick() (*abi.Convention, error) {
	if elfPath != "" {
		d, err := abi.NewDetector(config.Load().CacheSize)
		if err != nil {
			return nil, err
		}
		return d.Detect(elfPath)
	}
	if arch == "" {
		c, ok := abi.Native()
		if !ok {
			return nil, errors.Wrap(rcerrors.New(rcerrors.ErrUnsupportedArch), "pass --arch")
		}
		return c, nil
	}
	c, ok := abi.Lookup(arch)
	if !ok {
		return nil, errors.Errorf("unknown architecture %q", arch)
	}
	return c, nil
}

func show(w io.Writer, c *abi.Convention, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "arch\t%s\n", c.Arch)
	fmt.Fprintf(tw, "trap\t%s\n", c.Trap)
	fmt.Fprintf(tw, "number\t%s\n", c.Number)
	fmt.Fprintf(tw, "result\t%s\n", c.Result)
	for i, r := range c.Args {
		fmt.Fprintf(tw, "arg%d\t%s\n", i+1, r)
	}
	for i := 0; i < c.StackArgs; i++ {
		fmt.Fprintf(tw, "arg%d\tstack\n", len(c.Args)+i+1)
	}
	if c.ErrorFlag != nil {
		fmt.Fprintf(tw, "error flag\t%s\n", c.ErrorFlag)
	} else {
		fmt.Fprintf(tw, "error flag\tnone, result is -errno\n")
	}
	scratch := make([]string, 0, len(c.Scratch))
	for _, r := range c.Scratch {
		scratch = append(scratch, r.String())
	}
	fmt.Fprintf(tw, "clobbered\t%s\n", strings.Join(scratch, " "))
	fmt.Fprintf(tw, "first sysno\t%d\n", c.SysnoBase)
	return tw.Flush()
}

// parseWord accepts decimal, 0x hex and negative numbers.
func parseWord(s string) (uintptr, error) {
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 0, 64)
		return uintptr(v), err
	}
	v, err := strconv.ParseUint(s, 0, 64)
	return uintptr(v), err
}

func repl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "nr [args...] (or 'quit'): ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		fields := strings.Fields(line)
		words := make([]interface{}, 0, len(fields))
		var bad bool
		for _, f := range fields {
			w, err := parseWord(f)
			if err != nil {
				fmt.Fprintf(out, "bad number %q\n", f)
				bad = true
				break
			}
			words = append(words, w)
		}
		if bad {
			continue
		}

		nr := words[0].(uintptr)
		r, err := rawcall.Call(nr, words[1:]...)
		if err != nil {
			if e, ok := err.(unix.Errno); ok {
				fmt.Fprintf(out, "= -%d (%s)\n", uintptr(e), e.Error())
				continue
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "= %d (0x%x)\n", r, r)
	}
}
