package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, cfgname string
		nl, echo, plain       bool
		depth                 int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb (default whole numbers without a decimal point)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.IntVar(&depth, "depth", calc.DefaultMaxDepth, "maximum nesting depth of expressions")
	flag.StringVar(&cfgname, "config", "", "config file (default "+config.FileName+" in the working directory or a parent)")
	flag.BoolVar(&plain, "plain", false, "print every error as the configured error text")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	// Flags given explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Output.Format = verb
		case "depth":
			cfg.Eval.MaxDepth = depth
		case "plain":
			cfg.Output.Plain = plain
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	opts := cfg.Options()
	if nl {
		opts = append(opts, calc.StopOn('\n'))
	}
	var p []*calc.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			done, err := skipSpace(in)
			if err != nil {
				log.Fatal(err)
			}
			if done {
				break
			}
			a, err := calc.Parse(in, opts...)
			if err != nil {
				log.Fatal(cfg.Error(err))
			}
			p = append(p, a)
		}
	}

	failed := false
	for _, a := range p {
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval()
		if err != nil {
			fmt.Println(cfg.Error(err))
			failed = true
			continue
		}
		fmt.Println(cfg.Result(r))
	}
	if failed {
		os.Exit(1)
	}
}

// skipSpace consumes leading whitespace and reports whether the input is
// exhausted.
func skipSpace(in io.RuneScanner) (bool, error) {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return true, nil
			}
			return false, err
		}
		if !unicode.IsSpace(r) {
			return false, in.UnreadRune()
		}
	}
}

func loadConfig(name string) (*config.Config, error) {
	if name != "" {
		return config.Load(name)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, _, err := config.FindAndLoad(wd)
	return cfg, err
}

// infile opens the input file, or stdin if inname is "-" or std is true.
// Input may be UTF-8 or UTF-16 with a byte order mark; it is decoded to UTF-8.
func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return decode(f), nil
}

func decode(r io.Reader) io.RuneScanner {
	dec := textunicode.BOMOverride(textunicode.UTF8.NewDecoder())
	return bufio.NewReader(transform.NewReader(r, dec))
}
