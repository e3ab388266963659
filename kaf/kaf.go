/*
Package kaf writes annotation results as KAF documents.

KAF (KYOTO Annotation Format) is the layered XML format of the OpeNER and
IXA pipelines. This package produces the header and the text layer only:

   <KAF xml:lang="en" version="v1.opener">
     <kafHeader>
       <public publicId="…"/>
       <linguisticProcessors layer="text">
         <lp name="segtok-en-rule-based" version="1.0" timestamp="…"/>
       </linguisticProcessors>
     </kafHeader>
     <text>
       <wf wid="w1" sent="1" para="1" offset="0" length="3">Dr.</wf>
       …
     </text>
   </KAF>

Sentences and paragraphs are numbered from 1 across the whole document.
Offsets and lengths are measured in code-points.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kaf

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtok"
)

// tracer traces to segtok.kaf .
func tracer() tracing.Trace {
	return tracing.Select("segtok.kaf")
}

// Version is the KAF version written by default.
const Version = "v1.opener"

// ProcessorVersion is the version recorded for the linguistic processor.
const ProcessorVersion = "1.0"

// Options control the document header. Zero values select defaults.
type Options struct {
	Version          string    // KAF version, default Version
	Processor        string    // name of the linguistic processor, default "segtok-<lang>-<engines>"
	ProcessorVersion string    // default ProcessorVersion
	Timestamp        time.Time // default time.Now()
	PublicID         string    // default a random UUID
}

type document struct {
	XMLName xml.Name `xml:"KAF"`
	Lang    string   `xml:"xml:lang,attr"`
	Version string   `xml:"version,attr"`
	Header  header   `xml:"kafHeader"`
	Text    text     `xml:"text"`
}

type header struct {
	Public     public    `xml:"public"`
	Processors []lpLayer `xml:"linguisticProcessors"`
}

type public struct {
	PublicID string `xml:"publicId,attr"`
}

type lpLayer struct {
	Layer string `xml:"layer,attr"`
	LPs   []lp   `xml:"lp"`
}

type lp struct {
	Name      string `xml:"name,attr"`
	Version   string `xml:"version,attr"`
	Timestamp string `xml:"timestamp,attr"`
}

type text struct {
	WordForms []wf `xml:"wf"`
}

type wf struct {
	ID     string `xml:"wid,attr"`
	Sent   int    `xml:"sent,attr"`
	Para   int    `xml:"para,attr"`
	Offset int    `xml:"offset,attr"`
	Length int    `xml:"length,attr"`
	Form   string `xml:",chardata"`
}

func (opts Options) withDefaults(res *segtok.AnnotationResult) Options {
	if opts.Version == "" {
		opts.Version = Version
	}
	if opts.Processor == "" {
		opts.Processor = fmt.Sprintf("segtok-%s-%s", res.Language, engines(res.Provenance))
	}
	if opts.ProcessorVersion == "" {
		opts.ProcessorVersion = ProcessorVersion
	}
	if opts.Timestamp.IsZero() {
		opts.Timestamp = time.Now()
	}
	if opts.PublicID == "" {
		opts.PublicID = uuid.New().String()
	}
	return opts
}

// engines names the engine variants of a result. Mixed variants are
// joined with a '+', segmenter first.
func engines(p segtok.Provenance) string {
	if p.Segmenter == "" || p.Segmenter == p.Tokenizer {
		return p.Tokenizer
	}
	return p.Segmenter + "+" + p.Tokenizer
}

func build(res *segtok.AnnotationResult, opts Options) *document {
	opts = opts.withDefaults(res)
	doc := &document{
		Lang:    res.Language,
		Version: opts.Version,
		Header: header{
			Public: public{PublicID: opts.PublicID},
			Processors: []lpLayer{{
				Layer: "text",
				LPs: []lp{{
					Name:      opts.Processor,
					Version:   opts.ProcessorVersion,
					Timestamp: opts.Timestamp.UTC().Format(time.RFC3339),
				}},
			}},
		},
	}
	doc.Text.WordForms = make([]wf, 0, res.TokenCount())
	sent := 0
	for p, para := range res.Paragraphs {
		for _, s := range para.Sentences {
			sent++
			for _, t := range s.Tokens {
				doc.Text.WordForms = append(doc.Text.WordForms, wf{
					ID:     fmt.Sprintf("w%d", len(doc.Text.WordForms)+1),
					Sent:   sent,
					Para:   p + 1,
					Offset: t.Start,
					Length: t.Len(),
					Form:   t.Text,
				})
			}
		}
	}
	return doc
}

// Write renders an annotation result as a KAF document.
func Write(w io.Writer, res *segtok.AnnotationResult, opts Options) error {
	doc := build(res, opts)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing KAF: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	tracer().Debugf("wrote KAF document with %d word forms", len(doc.Text.WordForms))
	return nil
}
