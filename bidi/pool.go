package bidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Every paragraph analysis needs a run list as scratch space. Run lists keep
// their arena of run records between uses, so we pool them instead of
// re-allocating run records for every paragraph.
type runListPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRunListPool *runListPool

func init() {
	globalRunListPool = &runListPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newRunList(), nil
		})
	globalRunListPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRunListPool.opool = pool.NewObjectPool(globalRunListPool.ctx, factory, config)
}

// borrowRunList returns an empty run list from the pool.
func borrowRunList() *runList {
	o, err := globalRunListPool.opool.BorrowObject(globalRunListPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow run list from pool: %v", err)
		return newRunList()
	}
	return o.(*runList)
}

// releaseRunList clears a run list and puts it back into the pool.
func releaseRunList(rl *runList) {
	rl.clear()
	_ = globalRunListPool.opool.ReturnObject(globalRunListPool.ctx, rl)
}
