// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/optable/config"
	"github.com/ezrec/optable/opcode"
	"github.com/ezrec/optable/render"
	"github.com/ezrec/optable/source"
	"github.com/ezrec/optable/translate"
)

func main() {
	var conf string
	var input string
	var output string
	var format string
	var name string
	var pkg string
	var verify bool
	var verbose bool

	flag.StringVar(&conf, "c", "", ".toml configuration file")
	flag.StringVar(&input, "i", "", "HTML opcode reference grid")
	flag.StringVar(&output, "o", "", "Output file, - for stdout")
	flag.StringVar(&format, "f", "", "Output format: rust, go, starlark")
	flag.StringVar(&name, "n", "", "Table constant name")
	flag.StringVar(&pkg, "p", "", "Package of go output")
	flag.BoolVar(&verify, "verify", false, "Decode the output and compare it with the table before writing it")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(conf) != 0 {
		var err error
		cfg, err = config.Load(conf)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
	}

	// Explicit flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Input = input
		case "o":
			cfg.Output = output
		case "f":
			cfg.Format = render.Format(format)
		case "n":
			cfg.Name = name
		case "p":
			cfg.Package = pkg
		case "verify":
			cfg.Verify = verify
		case "v":
			cfg.Verbose = verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := run(&cfg); err != nil {
		var report opcode.ErrReport
		if errors.As(err, &report) {
			for _, cell_err := range report {
				log.Printf("%v: %v", cfg.Input, cell_err)
			}
			log.Fatal(translate.From("%v: %d errors, no table written", cfg.Input, len(report)))
		}
		log.Fatalf("%v: %v", cfg.Input, err)
	}
}

// run converts the configured reference grid into a table literal.
func run(cfg *config.Config) (err error) {
	grid, err := source.LoadFile(cfg.Input)
	if err != nil {
		return
	}

	bld := &opcode.Builder{Verbose: cfg.Verbose}
	tab, err := bld.Build(grid.Body())
	if err != nil {
		return
	}

	codec, err := cfg.Codec()
	if err != nil {
		return
	}

	var rendered bytes.Buffer
	err = codec.Encode(&rendered, tab)
	if err != nil {
		return
	}

	if cfg.Verify {
		err = render.Verify(codec, rendered.Bytes(), tab)
		if err != nil {
			return
		}
		if cfg.Verbose {
			log.Printf("%v: %v output verified", cfg.Input, cfg.Format)
		}
	}

	return write(cfg.Output, rendered.Bytes())
}

// write stores the rendered table, to stdout for "-".
func write(output string, data []byte) (err error) {
	var ouf io.WriteCloser = os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			return
		}
		defer func() {
			close_err := ouf.Close()
			if err == nil {
				err = close_err
			}
		}()
	}

	_, err = ouf.Write(data)
	return
}
