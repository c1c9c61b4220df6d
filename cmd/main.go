// Command cstar runs the compiler front-end pipeline — lex, parse, then
// dump and/or emit — over a single source file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"

	"github.com/cstarlang/cstar/internal/assert"
	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/dump"
	"github.com/cstarlang/cstar/internal/emitter"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/lexer"
	"github.com/cstarlang/cstar/internal/parser"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/symbol"
)

func main() {
	dumpFlag := flag.Bool("dump", false, "print the parsed AST as an indented tree")
	emitFlag := flag.Bool("emit", false, "emit C-like source for the parsed AST")
	astRaw := flag.Bool("ast-raw", false, "dump the raw Go AST via litter, for debugging this compiler itself")
	outPath := flag.String("o", "", "write emitted output to this path instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cstar [flags] <path|->")
		os.Exit(2)
	}

	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(*assert.Violation); ok {
				fmt.Fprintln(os.Stderr, "internal error:", v.Error())
				os.Exit(2)
			}
			panic(r)
		}
	}()

	path := flag.Arg(0)
	src, err := readSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := diag.NewLog()

	toks, _ := lexer.New(src, flags.Of(flags.LexerSkipComments), log).Tokenize()

	root := symbol.New(nil)
	program, _ := parser.New(toks, log, root).Parse()

	if log.HasErrors() {
		log.Render(os.Stderr)
		os.Exit(1)
	}

	if *astRaw {
		litter.Dump(program)
	}
	if *dumpFlag {
		dump.Dump(os.Stdout, program)
	}

	if *emitFlag || *outPath != "" || (!*dumpFlag && !*astRaw) {
		out := os.Stdout
		if *outPath != "" {
			f, err := os.Create(*outPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		emitter.Emit(out, program)
	}
}

// readSource loads path, treating "-" as a request to read stdin instead
// of a named file. Both paths go through source.DecodeUTF8 so a
// BOM-prefixed source lexes identically whether it came from a file or a
// pipe.
func readSource(path string) (*source.Source, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return source.New("<stdin>", source.DecodeUTF8(data)), nil
	}
	return source.LoadFile(path)
}
