package prefix

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/segtok"
	"golang.org/x/text/language"
)

//go:embed resources/nonbreaking_prefix.*
var resources embed.FS

const filePrefix = "nonbreaking_prefix."

// Loader loads prefix rule sets by language.
type Loader interface {
	Load(lang string) (*RuleSet, error)
}

// FSLoader loads prefix lists named "nonbreaking_prefix.<lang>" from a
// file system. Rule sets are cached, i.e. every language is read at most once.
type FSLoader struct {
	fsys  fs.FS
	dir   string
	mx    sync.Mutex
	cache map[string]*RuleSet
}

// NewFSLoader creates a loader for directory dir within fsys.
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	return &FSLoader{fsys: fsys, dir: dir, cache: make(map[string]*RuleSet)}
}

// DirLoader creates a loader for a directory of the local file system.
func DirLoader(dir string) *FSLoader {
	return NewFSLoader(os.DirFS(dir), ".")
}

// Embedded is the loader for the prefix lists compiled into this package.
var Embedded = NewFSLoader(resources, "resources")

// Load returns the embedded rule set for a language.
// lang may be any BCP 47 tag; only its base language is considered.
func Load(lang string) (*RuleSet, error) {
	return Embedded.Load(lang)
}

// Load returns the rule set for a language, reading it on first use.
//
// Interface Loader
func (l *FSLoader) Load(lang string) (*RuleSet, error) {
	base, err := BaseLanguage(lang)
	if err != nil {
		return nil, err
	}
	l.mx.Lock()
	defer l.mx.Unlock()
	if rs, ok := l.cache[base]; ok {
		return rs, nil
	}
	name := filePrefix + base
	if l.dir != "" && l.dir != "." {
		name = l.dir + "/" + name
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &segtok.LanguageError{Language: lang, Resource: "prefix list"}
		}
		return nil, &segtok.LanguageError{Language: lang, Resource: "prefix list",
			Err: fmt.Errorf("%w: %v", segtok.ErrResourceLoad, err)}
	}
	defer f.Close()
	rs, err := Parse(base, f)
	if err != nil {
		return nil, err
	}
	tracer().P("lang", base).Infof("loaded %d non-breaking prefixes", rs.Len())
	l.cache[base] = rs
	return rs, nil
}

// Languages lists the languages a loader has prefix lists for.
func (l *FSLoader) Languages() []string {
	dir := l.dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		tracer().Errorf("cannot list prefix lists: %v", err)
		return nil
	}
	var langs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), filePrefix) {
			langs = append(langs, strings.TrimPrefix(e.Name(), filePrefix))
		}
	}
	sort.Strings(langs)
	return langs
}

// BaseLanguage resolves a BCP 47 tag to its ISO 639 base language,
// e.g. "en-GB" → "en".
func BaseLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", &segtok.LanguageError{Language: lang, Resource: "language tag",
			Err: fmt.Errorf("%w: %v", segtok.ErrUnsupportedLanguage, err)}
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", &segtok.LanguageError{Language: lang, Resource: "language tag"}
	}
	return base.String(), nil
}

// LanguageFromEnvironment returns the base language of the user's locale,
// falling back to English.
func LanguageFromEnvironment() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v; assuming en", err)
		return "en"
	}
	base, err := BaseLanguage(userLocale)
	if err != nil || base == "und" {
		return "en"
	}
	tracer().Infof("detected user locale %v", userLocale)
	return base
}
