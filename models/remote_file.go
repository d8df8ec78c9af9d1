// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteFileRevision is the state of one file in the remote repository as
// observed by a read. An empty RevisionID means the file does not exist yet.
type RemoteFileRevision struct {
	Path       string
	Content    []byte
	RevisionID string
}

// Exists reports whether the remote file was found.
func (r RemoteFileRevision) Exists() bool {
	return r.RevisionID != ""
}

// FileCommit is one request to replace (or create) a file on a branch.
// RevisionID must be the value observed by the preceding read, or empty to
// create the file.
type FileCommit struct {
	Path       string
	Content    []byte
	Message    string
	Branch     string
	RevisionID string
}
