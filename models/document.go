// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RegionID names one editable region of the page. The set is closed.
type RegionID string

const (
	RegionMission  RegionID = "mission"
	RegionActions  RegionID = "actions"
	RegionNews     RegionID = "news"
	RegionFeatures RegionID = "features"
	RegionStats    RegionID = "stats"
)

// Regions lists every known region in page order.
var Regions = []RegionID{
	RegionMission,
	RegionActions,
	RegionNews,
	RegionFeatures,
	RegionStats,
}

// ParseRegionID converts s into a known [RegionID].
func ParseRegionID(s string) (RegionID, bool) {
	for _, id := range Regions {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Document is the editable content of the page, independent of how the
// page renders it: the inner markup of each region that exists, plus the
// full markup of every dialog added by the editor.
type Document struct {
	Regions map[RegionID]string
	Modals  []string
}

// NewDocument returns an empty Document with an initialised region map.
func NewDocument() Document {
	return Document{Regions: make(map[RegionID]string)}
}

// ContentSnapshot is a Document persisted in local storage. Every save
// replaces the previous snapshot wholesale.
type ContentSnapshot struct {
	Document
}

// MarshalJSON writes the flat storage shape:
// {"mission": "...", ..., "modals": ["..."]}. Absent regions are omitted.
func (s ContentSnapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Regions)+1)
	for _, id := range Regions {
		if markup, ok := s.Regions[id]; ok {
			out[string(id)] = markup
		}
	}
	modals := s.Modals
	if modals == nil {
		modals = []string{}
	}
	out["modals"] = modals
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat storage shape. Unknown keys are ignored and
// a null region is treated as absent, so restoring it keeps the page markup.
func (s *ContentSnapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("content snapshot is not an object")
	}

	doc := NewDocument()
	for _, id := range Regions {
		v, ok := raw[string(id)]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		var markup string
		if err := json.Unmarshal(v, &markup); err != nil {
			return fmt.Errorf("region %q: %w", id, err)
		}
		doc.Regions[id] = markup
	}
	if v, ok := raw["modals"]; ok {
		if err := json.Unmarshal(v, &doc.Modals); err != nil {
			return fmt.Errorf("modals: %w", err)
		}
	}

	s.Document = doc
	return nil
}
