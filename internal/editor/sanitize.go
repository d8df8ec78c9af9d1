// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"golang.org/x/net/html"
)

// Sanitized renders a copy of the page with every admin artifact removed:
// the toolbar, login and setup dialogs, the toast, tile buttons, editable
// markers, admin/modal/active classes and the hidden state of the login
// button. The receiver is not modified.
func (p *Page) Sanitized() ([]byte, error) {
	clone := p.Clone()
	clean(clone.doc)
	return clone.Render()
}

func clean(root *html.Node) {
	removable := func(n *html.Node) bool {
		if !isElement(n) {
			return false
		}
		switch elementID(n) {
		case idLoginModal, idSetupModal:
			return true
		}
		return hasClass(n, classToolbar) || hasClass(n, classToast) || isAdminScript(n)
	}
	for _, n := range findAll(root, removable) {
		detach(n)
	}

	stripEditing(root)

	walk(root, func(n *html.Node) bool {
		if !isElement(n) {
			return true
		}
		removeClass(n, classAdminMode)
		removeClass(n, classModalOpen)
		removeClass(n, classActive)
		if elementID(n) == idLoginButton {
			style, _ := attr(n, "style")
			if rest := styleWithout(style, "display"); rest != "" {
				setAttr(n, "style", rest)
			} else {
				removeAttr(n, "style")
			}
		}
		return true
	})
}
