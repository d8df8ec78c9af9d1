// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	classAdminMode    = "admin-mode"
	classModalOpen    = "modal-open"
	classActive       = "active"
	classToolbar      = "admin-toolbar"
	classToast        = "admin-toast"
	classAddButton    = "admin-add-btn"
	classDeleteButton = "admin-delete-btn"

	idLoginButton = "adminLoginBtn"
	idLoginModal  = "loginModal"
	idSetupModal  = "setupModal"

	attrEditable = "contenteditable"

	// AdminScriptPath is where the admin server serves the toolbar script.
	AdminScriptPath = "/_admin/admin.js"
)

const toolbarMarkup = `<div class="admin-toolbar">` +
	`<button class="btn-save" data-admin-action="save" title="Zapisz i opublikuj zmiany globalnie">ZAPISZ ZMIANY</button>` +
	`<button class="btn-logout" data-admin-action="logout">WYLOGUJ</button>` +
	`<script src="` + AdminScriptPath + `" defer></script>` +
	`</div>`

const shareButtonMarkup = `<button class="btn-share" data-admin-action="share-access" title="Ustaw hasło globalne">UDOSTĘPNIJ DOSTĘP</button>`

const (
	deleteButtonMarkup = `<button class="admin-delete-btn" title="Usuń element">&times;</button>`
	addButtonMarkup    = `<button class="admin-add-btn">+ Dodaj kafelek</button>`
)

var cardClasses = []string{"mission-card", "action-card", "news-card", "feature-card", "form-group"}

var tileGridClasses = []string{"mission-grid", "actions-grid", "news-grid", "about-features"}

// IsAdminMode reports whether the page is decorated for editing.
func (p *Page) IsAdminMode() bool {
	return hasClass(p.body(), classAdminMode)
}

// EnableAdminMode decorates the page for editing: marks <body>, hides the
// login button, adds the toolbar (with the share-access action when
// hasToken), makes text elements editable and adds tile buttons. Calling it
// again is a no-op apart from the share button, which is added once a token
// becomes available.
func (p *Page) EnableAdminMode(hasToken bool) error {
	body := p.body()
	if body == nil {
		return ErrNoDocumentElement
	}
	addClass(body, classAdminMode)

	toolbarParent := body
	if btn := findFirst(p.doc, byID(idLoginButton)); btn != nil {
		style, _ := attr(btn, "style")
		setAttr(btn, "style", styleWithout(style, "display")+"display: none;")
		if btn.Parent != nil {
			toolbarParent = btn.Parent
		}
	}

	toolbar := findFirst(p.doc, byClass(classToolbar))
	if toolbar == nil {
		nodes, err := parseFragment(toolbarMarkup, toolbarParent)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			toolbarParent.AppendChild(n)
			if hasClass(n, classToolbar) {
				toolbar = n
			}
		}
	}
	if hasToken && toolbar != nil && findFirst(toolbar, byClass("btn-share")) == nil {
		if err := p.insertBeforeScript(toolbar, shareButtonMarkup); err != nil {
			return err
		}
	}

	p.markEditable()

	if err := p.appendOnce(cardClasses, classDeleteButton, deleteButtonMarkup, true); err != nil {
		return err
	}
	return p.appendOnce(tileGridClasses, classAddButton, addButtonMarkup, false)
}

// AttachAdminScript appends the admin script to <body> unless the page
// already loads it. The admin server uses it for the logged-out view so the
// login button can open the password prompt.
func (p *Page) AttachAdminScript() error {
	body := p.body()
	if body == nil {
		return ErrNoDocumentElement
	}
	if findFirst(p.doc, isAdminScript) != nil {
		return nil
	}
	nodes, err := parseFragment(`<script src="`+AdminScriptPath+`" defer></script>`, body)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return nil
}

func isAdminScript(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Script {
		return false
	}
	src, _ := attr(n, "src")
	return src == AdminScriptPath
}

func (p *Page) insertBeforeScript(toolbar *html.Node, markup string) error {
	nodes, err := parseFragment(markup, toolbar)
	if err != nil {
		return err
	}
	script := findFirst(toolbar, byAtom(atom.Script))
	for _, n := range nodes {
		if script != nil && script.Parent == toolbar {
			toolbar.InsertBefore(n, script)
		} else {
			toolbar.AppendChild(n)
		}
	}
	return nil
}

func (p *Page) markEditable() {
	isEditable := byAtom(atom.H1, atom.H2, atom.H3, atom.H4, atom.P, atom.Span, atom.Li)
	walk(p.doc, func(n *html.Node) bool {
		if !isElement(n) {
			return true
		}
		if hasClass(n, classToolbar) || hasClass(n, classAddButton) || hasClass(n, classDeleteButton) {
			return false
		}
		if isEditable(n) || (n.DataAtom == atom.Label && insideAny(n, "form-group")) {
			setAttr(n, attrEditable, "true")
		}
		return true
	})
}

// appendOnce adds markup to every element carrying one of containers that
// does not already hold a child with marker. With all=false only the first
// container of each class is decorated.
func (p *Page) appendOnce(containers []string, marker, markup string, all bool) error {
	for _, class := range containers {
		var targets []*html.Node
		if all {
			targets = findAll(p.doc, byClass(class))
		} else if n := findFirst(p.doc, byClass(class)); n != nil {
			targets = []*html.Node{n}
		}
		for _, t := range targets {
			if findFirst(t, byClass(marker)) != nil {
				continue
			}
			nodes, err := parseFragment(markup, t)
			if err != nil {
				return err
			}
			for _, n := range nodes {
				t.AppendChild(n)
			}
		}
	}
	return nil
}

// stripEditing removes the per-element editing affordances below root.
func stripEditing(root *html.Node) {
	for _, n := range findAll(root, func(n *html.Node) bool {
		return hasClass(n, classAddButton) || hasClass(n, classDeleteButton)
	}) {
		detach(n)
	}
	walk(root, func(n *html.Node) bool {
		if isElement(n) {
			removeAttr(n, attrEditable)
		}
		return true
	})
}

// cleanFragment strips editing affordances from parsed fragment nodes so
// that markup posted back from an admin-decorated page stores clean.
func cleanFragment(nodes []*html.Node) []*html.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if hasClass(n, classAddButton) || hasClass(n, classDeleteButton) {
			continue
		}
		stripEditing(n)
		out = append(out, n)
	}
	return out
}
