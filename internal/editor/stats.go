// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	classStatNumber = "stat-number"
	attrStatTarget  = "data-target"
)

// syncStatTargets sets data-target of every counter under root to the
// digits of its text, so the counter animation ends on the edited value.
// A counter without digits targets 0.
func syncStatTargets(root *html.Node) {
	for _, n := range findAll(root, byClass(classStatNumber)) {
		setAttr(n, attrStatTarget, statDigits(textContent(n)))
	}
}

func statDigits(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return "0"
	}
	return digits
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
