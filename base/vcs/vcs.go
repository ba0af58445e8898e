// Copyright (c) 2020, The Cogent Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vcs provides minimal version-control lookups used to auto-fill
// a translation unit's version attribute: when a unit is created from a
// file on disk and no explicit version was given, the enclosing working
// copy's current revision (if any) is used instead of leaving the
// attribute unset.
package vcs

import (
	"fmt"
	"os"
	"path/filepath"

	mvcs "github.com/Masterminds/vcs"
)

// Repo is the subset of [mvcs.Repo] this package depends on.
type Repo = mvcs.Repo

// relPath returns fname relative to repo's local working-copy root,
// falling back to fname unchanged if it isn't under that root.
func relPath(repo Repo, fname string) string {
	rel, err := filepath.Rel(repo.LocalPath(), fname)
	if err != nil {
		return fname
	}
	return rel
}

// DetectVersion walks up from path looking for a VCS working copy and
// returns its current revision string. ok is false if path is not under
// any recognized working copy, or the revision could not be read (e.g.
// a detached/uninitialized checkout) — callers should treat that as
// "no version available", never as a hard error.
func DetectVersion(path string) (version string, ok bool) {
	dir := path
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	root, vtype, err := findRepoRoot(dir)
	if err != nil {
		return "", false
	}
	repo, err := newRepo(vtype, root)
	if err != nil {
		return "", false
	}
	ver, err := repo.Version()
	if err != nil {
		return "", false
	}
	return ver, true
}

// findRepoRoot walks up from dir until it finds a directory mvcs
// recognizes as a VCS working copy root, or reaches the filesystem root.
func findRepoRoot(dir string) (string, mvcs.Type, error) {
	for {
		if t, err := mvcs.DetectVcsFromFS(dir); err == nil {
			return dir, t, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("vcs: no working copy found above %q", dir)
		}
		dir = parent
	}
}

// newRepo constructs a local-only (no remote) Repo for the given type,
// used purely to read the current revision of an existing working copy.
func newRepo(t mvcs.Type, local string) (mvcs.Repo, error) {
	switch t {
	case mvcs.Git:
		return mvcs.NewGitRepo("", local)
	case mvcs.Svn:
		return mvcs.NewSvnRepo("", local)
	case mvcs.Bzr:
		return mvcs.NewBzrRepo("", local)
	case mvcs.Hg:
		return mvcs.NewHgRepo("", local)
	default:
		return nil, fmt.Errorf("vcs: unsupported working-copy type %v", t)
	}
}
