// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoAdminServer is returned by NewServer when there is no HTTP handler
// to serve or no listen address is configured.
var errNoAdminServer = errors.New("admin server not created: missing http handler or listen address")
