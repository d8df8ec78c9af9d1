// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local admin surface of sitekeeper.
//
// It serves the site directory, renders the live page (decorated for
// editing when the request carries a valid admin session) and exposes the
// JSON admin API used by the toolbar script: login, region edits, save and
// publish, and sharing access. Tracing, access logging, compression and
// session checks are handled here before requests reach the service layer.
package http
