// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import "errors"

var (
	// ErrUnknownRegion is returned for a region name outside the fixed set.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrRegionMissing is returned when the page has no element for a
	// known region.
	ErrRegionMissing = errors.New("region not present in page")

	// ErrInvalidMarkup is returned when a dialog fragment contains no
	// element or its id lacks the editor prefix.
	ErrInvalidMarkup = errors.New("markup contains no element")

	// ErrNoDocumentElement is returned when the parsed input lacks an
	// <html> element to render from.
	ErrNoDocumentElement = errors.New("page has no <html> element")
)
