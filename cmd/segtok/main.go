/*
Command segtok splits text into paragraphs, sentences and tokens and writes
the result as a KAF document.

Text is read from a file or from standard input, line by line. Each line is
cleaned from control and format characters; lines are joined with newlines,
and blank lines separate paragraphs.

   segtok -l en < input.txt > output.kaf
   segtok tokenize --method ml --lang es input.txt
   segtok prefixes -l en

Flags may also be set from the environment (SEGTOK_LANG, SEGTOK_METHOD, …)
or from a .env file in the working directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// cli defines the command-line interface using Kong.
type cli struct {
	Trace string `name:"trace" short:"t" default:"E" enum:"D,I,E" env:"SEGTOK_TRACE" help:"Trace level (D, I, E)"`

	Tokenize TokenizeCmd `cmd:"" default:"withargs" help:"Segment and tokenize text, write KAF to stdout"`
	Prefixes PrefixesCmd `cmd:"" help:"List the non-breaking prefixes of a language"`
}

// runContext is bound to the Run methods of commands.
type runContext struct {
	in  io.Reader
	out io.Writer
}

func main() {
	_ = godotenv.Load()
	var app cli
	ctx := kong.Parse(&app,
		kong.Name("segtok"),
		kong.Description("Multilingual sentence segmentation and tokenization"),
		kong.UsageOnError(),
	)
	setupTracing(app.Trace)
	err := ctx.Run(&runContext{in: os.Stdin, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}

func setupTracing(level string) {
	logAdapter := gologadapter.GetAdapter()
	trace := logAdapter()
	trace.SetTraceLevel(traceLevel(level))
	gtrace.CoreTracer = trace
	tracing.SetTraceSelector(selector{tracer: trace})
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// selector hands out the same tracer for every package.
type selector struct {
	tracer tracing.Trace
}

func (s selector) Select(string) tracing.Trace {
	return s.tracer
}
