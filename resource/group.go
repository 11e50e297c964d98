package resource

import (
	"sync"

	"go.uber.org/zap"
)

// Group runs the independent fetches a single page needs concurrently and
// waits for all of them to settle. One failed section degrades only itself;
// the page renders once every section has either loaded or fallen back to
// its empty default.
type Group struct {
	wg sync.WaitGroup
}

// Section runs fn in its own goroutine. fn writes its result through its own
// closure; an error is logged and swallowed so the section falls back to
// whatever default the caller pre-set.
func (g *Group) Section(name string, fn func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(); err != nil {
			zap.L().Warn("section degraded to empty state",
				zap.String("section", name), zap.Error(err))
		}
	}()
}

// Wait blocks until every section has settled.
func (g *Group) Wait() {
	g.wg.Wait()
}
