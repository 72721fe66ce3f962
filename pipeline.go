package tilemap

import (
	"context"
	"errors"
	"sync"
)

type groupedName struct {
	group string
	name  string
}

type groupedMap struct {
	group string
	m     *Map
}

func findMaps(ctx context.Context, groups *GroupIndex) (<-chan groupedName, <-chan error) {
	out := make(chan groupedName)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i, maps := range groups.Maps {
			for _, name := range maps {
				select {
				case out <- groupedName{groups.Groups[i], name}:
				case <-ctx.Done():
					errc <- errors.New("map listing cancelled")
					return
				}
			}
		}
	}()
	return out, errc
}

// loadWorker is the only goroutine that touches the Project while the
// pipeline runs.
func loadWorker(ctx context.Context, p *Project, in <-chan groupedName) (<-chan groupedMap, <-chan error) {
	out := make(chan groupedMap)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for n := range in {
			m := p.Map(n.name)
			select {
			case out <- groupedMap{n.group, m}:
			case <-ctx.Done():
				errc <- errors.New("map loading cancelled")
				return
			}
		}
	}()
	return out, errc
}

func (c *Catalog) storeWorker(in <-chan groupedMap) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for gm := range in {
			if err := c.addMap(gm.group, gm.m); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc
}

// waitForPipeline returns the first error from any stage, cancelling the
// rest, but only once every stage has finished.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Index loads every map listed in the group table of p and records it in
// the catalog. The Project must not be used by anything else until Index
// returns.
func (c *Catalog) Index(ctx context.Context, p *Project) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	names, errc1 := findMaps(ctx, p.Groups())
	maps, errc2 := loadWorker(ctx, p, names)
	errc3 := c.storeWorker(maps)

	return waitForPipeline(cancel, errc1, errc2, errc3)
}
