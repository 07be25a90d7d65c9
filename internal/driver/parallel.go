package driver

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TokenizeAll scans every path with a CPU-bounded worker pool. Results come
// back in input order, each with its own FileSet and Bag so the scans stay
// independent. The first load error cancels the remaining work.
func TokenizeAll(paths []string, maxDiagnostics int) ([]*TokenizeResult, error) {
	results := make([]*TokenizeResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			res, err := Tokenize(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
