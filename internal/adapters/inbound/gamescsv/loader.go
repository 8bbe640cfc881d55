package gamescsv

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/csvy/hockey-elo/internal/core/elo"
)

// LoadFile parses one CSV of game records, preserving feed order.
func LoadFile(path string) ([]elo.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open games csv: %w", err)
	}
	defer f.Close()

	matches, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return matches, nil
}

// LoadFiles parses several season files concurrently and returns them
// concatenated in the order given, never in goroutine completion order:
// the fold downstream is order-sensitive.
func LoadFiles(paths []string) ([]elo.Match, error) {
	perFile := make([][]elo.Match, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			matches, err := LoadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []elo.Match
	for _, matches := range perFile {
		all = append(all, matches...)
	}
	return all, nil
}
