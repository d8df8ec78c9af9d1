// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no listen address. The admin server cannot start
// without one.
var errNoHandlersAreCreated = errors.New("no handlers are created")
