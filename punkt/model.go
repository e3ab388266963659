/*
Package punkt implements the statistical variant of sentence segmentation
and tokenization. It wraps an unsupervised Punkt model, as trained for
NLTK and shipped with package github.com/neurosnap/sentences.

The model is treated as an opaque oracle: the segmenter asks it for
sentence boundaries, the tokenizer asks it whether a word followed by a
period is a known abbreviation. There is no fallback to the rule-based
engine; failures surface as errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package punkt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
	"github.com/npillmayer/segtok/prefix"
)

// tracer traces to segtok.punkt .
func tracer() tracing.Trace {
	return tracing.Select("segtok.punkt")
}

// trainingFiles maps base languages to Punkt training data.
var trainingFiles = map[string]string{
	"cs": "czech",
	"da": "danish",
	"de": "german",
	"el": "greek",
	"en": "english",
	"es": "spanish",
	"et": "estonian",
	"fi": "finnish",
	"fr": "french",
	"it": "italian",
	"nl": "dutch",
	"no": "norwegian",
	"pl": "polish",
	"pt": "portuguese",
	"sl": "slovene",
	"sv": "swedish",
	"tr": "turkish",
}

// Model is a loaded Punkt model. It is read-only and may be shared between
// goroutines.
type Model struct {
	lang      string
	storage   *sentences.Storage
	tokenizer *sentences.DefaultSentenceTokenizer
}

// Language returns the base language of a model.
func (m *Model) Language() string {
	return m.lang
}

// IsAbbreviation asks the model if word, without its trailing period, is
// a known abbreviation.
func (m *Model) IsAbbreviation(word string) bool {
	word = strings.ToLower(strings.TrimSuffix(word, "."))
	return word != "" && m.storage.AbbrevTypes.Has(word)
}

var models = struct {
	sync.Mutex
	cache map[string]*Model
}{cache: make(map[string]*Model)}

// LoadModel loads the Punkt model for a language, given as a BCP 47 tag.
// Models are loaded once and cached.
func LoadModel(lang string) (*Model, error) {
	base, err := prefix.BaseLanguage(lang)
	if err != nil {
		return nil, err
	}
	name, ok := trainingFiles[base]
	if !ok {
		return nil, &segtok.LanguageError{Language: lang, Resource: "punkt model"}
	}
	models.Lock()
	defer models.Unlock()
	if m, ok := models.cache[base]; ok {
		return m, nil
	}
	data, err := sentencesdata.Asset("data/" + name + ".json")
	if err != nil {
		return nil, &segtok.LanguageError{Language: lang, Resource: "punkt model",
			Err: fmt.Errorf("%w: %v", segtok.ErrResourceLoad, err)}
	}
	m, err := newModel(base, data)
	if err != nil {
		return nil, &segtok.LanguageError{Language: lang, Resource: "punkt model", Err: err}
	}
	tracer().P("lang", base).Infof("loaded punkt model %s", name)
	models.cache[base] = m
	return m, nil
}

// NewModel creates a model from Punkt training data in JSON format.
func NewModel(lang string, data []byte) (*Model, error) {
	m, err := newModel(lang, data)
	if err != nil {
		return nil, &segtok.LanguageError{Language: lang, Resource: "punkt model", Err: err}
	}
	return m, nil
}

func newModel(lang string, data []byte) (*Model, error) {
	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", segtok.ErrResourceLoad, err)
	}
	return &Model{
		lang:      lang,
		storage:   storage,
		tokenizer: sentences.NewSentenceTokenizer(storage),
	}, nil
}
