package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/annotate"
	"github.com/npillmayer/segtok/kaf"
	"github.com/npillmayer/segtok/moses"
	"github.com/npillmayer/segtok/prefix"
	"github.com/npillmayer/segtok/punkt"
)

// Engine methods selectable with --method.
const (
	methodMoses = "moses"
	methodML    = "ml"
)

// TokenizeCmd segments and tokenizes text and writes KAF.
type TokenizeCmd struct {
	Lang      string `name:"lang" short:"l" env:"SEGTOK_LANG" help:"Language of the input (default: from the user's locale)"`
	Method    string `name:"method" short:"m" default:"moses" enum:"moses,ml" env:"SEGTOK_METHOD" help:"Engine: rule-based (moses) or statistical (ml)"`
	Delimiter string `name:"delimiter" short:"d" env:"SEGTOK_DELIMITER" help:"Paragraph delimiter; escapes \\n and \\t are recognized"`
	Policy    string `name:"policy" type:"existingfile" env:"SEGTOK_POLICY" help:"YAML file with the rule precedence policy"`
	PrefixDir string `name:"prefix-dir" type:"existingdir" env:"SEGTOK_PREFIX_DIR" help:"Directory with nonbreaking_prefix.<lang> files"`
	Workers   int    `name:"workers" short:"w" default:"1" env:"SEGTOK_WORKERS" help:"Number of paragraphs to process in parallel"`
	Input     string `arg:"" optional:"" type:"existingfile" help:"Input file (default: stdin)"`
}

// Run reads the input, annotates it and writes a KAF document.
func (c *TokenizeCmd) Run(rc *runContext) error {
	lang := c.language()
	seg, tok, err := c.engines(lang)
	if err != nil {
		return err
	}
	in := rc.in
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	delim := unescape(c.Delimiter)
	text, err := readText(in, delim)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	annotator := annotate.New(seg, tok,
		annotate.WithLanguage(lang),
		annotate.WithDelimiter(delim),
		annotate.WithWorkers(c.Workers),
	)
	res, err := annotator.Annotate(text)
	if err != nil {
		return err
	}
	gtrace.CoreTracer.Infof("%d paragraphs, %d sentences, %d tokens",
		len(res.Paragraphs), res.SentenceCount(), res.TokenCount())
	return kaf.Write(rc.out, res, kaf.Options{})
}

func (c *TokenizeCmd) language() string {
	if c.Lang != "" {
		return c.Lang
	}
	return prefix.LanguageFromEnvironment()
}

// engines creates a segmenter and a tokenizer for the selected method.
func (c *TokenizeCmd) engines(lang string) (segtok.SentenceSegmenter, segtok.Tokenizer, error) {
	if c.Method == methodML {
		model, err := punkt.LoadModel(lang)
		if err != nil {
			return nil, nil, err
		}
		return punkt.NewSegmenter(model), punkt.NewTokenizer(model), nil
	}
	rules, err := loadPrefixes(lang, c.PrefixDir)
	if err != nil {
		return nil, nil, err
	}
	policy := moses.DefaultPolicy()
	if c.Policy != "" {
		f, err := os.Open(c.Policy)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if policy, err = moses.LoadPolicy(f); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c.Policy, err)
		}
	}
	return moses.NewSegmenter(rules, moses.WithPolicy(policy)),
		moses.NewTokenizer(rules, moses.WithPolicy(policy)), nil
}

func loadPrefixes(lang, dir string) (*prefix.RuleSet, error) {
	if dir != "" {
		return prefix.DirLoader(dir).Load(lang)
	}
	return prefix.Load(lang)
}

func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

// PrefixesCmd lists the non-breaking prefixes of a language.
type PrefixesCmd struct {
	Lang      string `name:"lang" short:"l" env:"SEGTOK_LANG" help:"Language (default: from the user's locale)"`
	PrefixDir string `name:"prefix-dir" type:"existingdir" env:"SEGTOK_PREFIX_DIR" help:"Directory with nonbreaking_prefix.<lang> files"`
}

// Run prints the prefix list in Moses format.
func (c *PrefixesCmd) Run(rc *runContext) error {
	lang := c.Lang
	if lang == "" {
		lang = prefix.LanguageFromEnvironment()
	}
	rules, err := loadPrefixes(lang, c.PrefixDir)
	if err != nil {
		return err
	}
	for _, e := range rules.Entries() {
		line := e.Prefix
		if e.NumericException {
			line += " #NUMERIC_ONLY#"
		}
		if _, err := fmt.Fprintln(rc.out, line); err != nil {
			return err
		}
	}
	return nil
}
