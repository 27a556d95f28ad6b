// SPDX-License-Identifier: EPL-2.0

package sndio

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Probe opens path read-only and returns its stream properties without
// retaining a handle.
func Probe(path string) (Info, error) {
	f, err := Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	return f.info, nil
}

// ProbeAll probes every path with bounded parallelism and returns the
// results in input order. Distinct handles are fully independent, so
// probing in parallel is safe. The first failure aborts the batch.
func ProbeAll(paths []string) ([]Info, error) {
	infos := make([]Info, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			info, err := Probe(path)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}
