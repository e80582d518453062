package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// filePair is one (lhs, rhs) path pairing discovered under two directory
// roots, relative path preserved so the tree structure on both sides
// lines up.
type filePair struct {
	relPath string
	lhsPath string
	rhsPath string
}

// discoverPairs walks lhsRoot on fs and pairs every regular file it finds
// with the file at the same relative path under rhsRoot. Files that exist
// only on one side are still paired, with the missing side's path left
// empty -- the caller treats an empty path as "file added" or "file
// removed" content.
//
// Grounded on SPEC_FULL.md's DOMAIN STACK entry for afero: "abstracts
// directory walking and file reads behind afero.Fs so diff-dir can be
// tested against an in-memory filesystem instead of touching disk",
// the same rationale aws-copilot-cli uses afero for.
func discoverPairs(fs afero.Fs, lhsRoot, rhsRoot string) ([]filePair, error) {
	seen := map[string]bool{}
	var pairs []filePair

	err := afero.Walk(fs, lhsRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(lhsRoot, path)
		if err != nil {
			return err
		}
		seen[rel] = true
		pairs = append(pairs, filePair{relPath: rel, lhsPath: path, rhsPath: filepath.Join(rhsRoot, rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = afero.Walk(fs, rhsRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(rhsRoot, path)
		if err != nil {
			return err
		}
		if seen[rel] {
			return nil
		}
		pairs = append(pairs, filePair{relPath: rel, lhsPath: "", rhsPath: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// readPair reads both sides of a pair, treating a missing path (file
// present on only one side) as empty content so the core still reports
// every line/node on the present side as novel.
func readPair(fs afero.Fs, p filePair) (lhsBytes, rhsBytes []byte, err error) {
	if p.lhsPath != "" {
		lhsBytes, err = afero.ReadFile(fs, p.lhsPath)
		if err != nil {
			return nil, nil, err
		}
	}
	if p.rhsPath != "" {
		rhsBytes, err = afero.ReadFile(fs, p.rhsPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return lhsBytes, rhsBytes, nil
}
