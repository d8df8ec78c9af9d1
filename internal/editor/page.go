// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor is the render/apply layer between the site's HTML page and
// the editable [models.Document] value.
//
// A [Page] wraps a parsed HTML document. It can capture the editable content
// into a Document, apply a Document back onto the markup, decorate the page
// with admin affordances, and produce the sanitized markup that gets
// published. Page is not safe for concurrent use.
package editor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MKhiriev/go-site-keeper/models"
)

// ModalIDPrefix marks dialogs added by the editor. Only these are captured.
const ModalIDPrefix = "modal-new-"

// regionClasses maps each region to the class of its container element.
var regionClasses = map[models.RegionID]string{
	models.RegionMission:  "mission-grid",
	models.RegionActions:  "actions-grid",
	models.RegionNews:     "news-grid",
	models.RegionFeatures: "about-features",
	models.RegionStats:    "stats-grid",
}

// Page is a parsed HTML page.
type Page struct {
	doc *html.Node
}

// Parse reads a full HTML document from r.
func Parse(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	if findFirst(doc, byAtom(atom.Html)) == nil {
		return nil, ErrNoDocumentElement
	}
	return &Page{doc: doc}, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) (*Page, error) {
	return Parse(bytes.NewReader(b))
}

// Clone returns an independent deep copy of the page.
func (p *Page) Clone() *Page {
	return &Page{doc: cloneTree(p.doc)}
}

// Render serializes the page with a leading doctype.
func (p *Page) Render() ([]byte, error) {
	root := p.documentElement()
	if root == nil {
		return nil, ErrNoDocumentElement
	}
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Page) documentElement() *html.Node {
	return findFirst(p.doc, byAtom(atom.Html))
}

func (p *Page) body() *html.Node {
	return findFirst(p.doc, byAtom(atom.Body))
}

func (p *Page) regionNode(id models.RegionID) (*html.Node, error) {
	class, ok := regionClasses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	n := findFirst(p.doc, byClass(class))
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrRegionMissing, id)
	}
	return n, nil
}

// HasRegion reports whether the page contains the region container.
func (p *Page) HasRegion(id models.RegionID) bool {
	_, err := p.regionNode(id)
	return err == nil
}

// Region returns the inner markup of a region.
func (p *Page) Region(id models.RegionID) (string, error) {
	n, err := p.regionNode(id)
	if err != nil {
		return "", err
	}
	return innerHTML(n)
}

// SetRegion replaces the inner markup of a region. Counters in the new
// markup get their data-target from their edited text.
func (p *Page) SetRegion(id models.RegionID, markup string) error {
	n, err := p.regionNode(id)
	if err != nil {
		return err
	}
	children, err := parseFragment(markup, n)
	if err != nil {
		return fmt.Errorf("parse region %s: %w", id, err)
	}
	replaceChildren(n, cleanFragment(children))
	syncStatTargets(n)
	return nil
}

// HasElementID reports whether any element in the page carries id.
func (p *Page) HasElementID(id string) bool {
	return id != "" && findFirst(p.doc, byID(id)) != nil
}

// Modals returns the outer markup of every editor-added dialog, in
// document order. Only direct children of <body> are considered.
func (p *Page) Modals() ([]string, error) {
	body := p.body()
	if body == nil {
		return nil, nil
	}
	var out []string
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if !isElement(c) || !strings.HasPrefix(elementID(c), ModalIDPrefix) {
			continue
		}
		markup, err := outerHTML(c)
		if err != nil {
			return nil, err
		}
		out = append(out, markup)
	}
	return out, nil
}

// AddModal appends the first element of markup to <body> unless an element
// with the same id already exists. It reports whether the page changed.
func (p *Page) AddModal(markup string) (bool, error) {
	body := p.body()
	if body == nil {
		return false, ErrNoDocumentElement
	}
	node, err := p.modalNode(markup, body)
	if err != nil {
		return false, err
	}
	if p.HasElementID(elementID(node)) {
		return false, nil
	}
	body.AppendChild(node)
	return true, nil
}

func (p *Page) modalNode(markup string, body *html.Node) (*html.Node, error) {
	nodes, err := parseFragment(markup, body)
	if err != nil {
		return nil, fmt.Errorf("parse modal: %w", err)
	}
	for _, n := range nodes {
		if !isElement(n) {
			continue
		}
		if !strings.HasPrefix(elementID(n), ModalIDPrefix) {
			return nil, fmt.Errorf("%w: dialog id must start with %q", ErrInvalidMarkup, ModalIDPrefix)
		}
		stripEditing(n)
		return n, nil
	}
	return nil, ErrInvalidMarkup
}

// Capture reads the editable content of the page. Regions absent from the
// page are absent from the result.
func (p *Page) Capture() (models.Document, error) {
	doc := models.NewDocument()
	for _, id := range models.Regions {
		n, err := p.regionNode(id)
		if err != nil {
			continue
		}
		markup, err := innerHTML(n)
		if err != nil {
			return models.Document{}, fmt.Errorf("capture %s: %w", id, err)
		}
		doc.Regions[id] = markup
	}
	modals, err := p.Modals()
	if err != nil {
		return models.Document{}, fmt.Errorf("capture modals: %w", err)
	}
	doc.Modals = modals
	return doc, nil
}

// Apply writes doc onto the page. Regions present in both are replaced
// wholesale; regions missing from the page are skipped. Dialogs whose id is
// already in the page are skipped. All markup is parsed before the page is
// touched, so a failure leaves the page unchanged.
func (p *Page) Apply(doc models.Document) error {
	type pending struct {
		node     *html.Node
		children []*html.Node
	}
	var regions []pending
	for _, id := range models.Regions {
		markup, ok := doc.Regions[id]
		if !ok {
			continue
		}
		n, err := p.regionNode(id)
		if err != nil {
			continue
		}
		children, err := parseFragment(markup, n)
		if err != nil {
			return fmt.Errorf("parse region %s: %w", id, err)
		}
		regions = append(regions, pending{node: n, children: cleanFragment(children)})
	}

	body := p.body()
	var modals []*html.Node
	if body != nil {
		for _, markup := range doc.Modals {
			n, err := p.modalNode(markup, body)
			if err != nil {
				return err
			}
			modals = append(modals, n)
		}
	}

	for _, r := range regions {
		replaceChildren(r.node, r.children)
	}
	for _, n := range modals {
		if p.HasElementID(elementID(n)) {
			continue
		}
		body.AppendChild(n)
	}
	return nil
}
