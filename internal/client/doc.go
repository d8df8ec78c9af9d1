// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the sitekeeper runtime: configuration, storages,
// repository adapter, notifiers and services, shared by every CLI command.
package client
