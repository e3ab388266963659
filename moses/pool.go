package moses

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/segtok/spanmap"
)

// workspace holds the buffers for tokenizing a single sentence.
// Working copies carry a parallel slice of marks: a mark >= 0 flags a
// placeholder code-point and indexes the protected region it stands for.
type workspace struct {
	orig      []rune
	protected []protection
	pass1     spanmap.Builder // protect
	marks1    []int
	pass2     spanmap.Builder // pad
	marks2    []int
	buf1      []rune
	buf2      []rune
}

func (ws *workspace) reset(sentence string) {
	ws.orig = ws.orig[:0]
	for _, r := range sentence {
		ws.orig = append(ws.orig, r)
	}
	ws.protected = ws.protected[:0]
	ws.pass1.Reset(ws.buf1)
	ws.marks1 = ws.marks1[:0]
	ws.pass2.Reset(ws.buf2)
	ws.marks2 = ws.marks2[:0]
}

// Workspaces are short-lived objects, borrowed for every call of Tokenize.
// To avoid re-allocating their buffers we will pool them.
type workspacePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWorkspacePool *workspacePool

func init() {
	globalWorkspacePool = &workspacePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			ws := &workspace{
				buf1: make([]rune, 0, 256),
				buf2: make([]rune, 0, 320),
			}
			return ws, nil
		})
	globalWorkspacePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWorkspacePool.opool = pool.NewObjectPool(globalWorkspacePool.ctx, factory, config)
}

// borrowWorkspace returns a cleared workspace for a sentence.
func borrowWorkspace(sentence string) *workspace {
	o, err := globalWorkspacePool.opool.BorrowObject(globalWorkspacePool.ctx)
	if err != nil {
		tracer().Errorf("workspace pool: %v", err)
		o = &workspace{}
	}
	ws := o.(*workspace)
	ws.reset(sentence)
	return ws
}

// releaseIntoPool puts a workspace back into the pool, keeping the grown
// buffers of the working copies for the next sentence.
func (ws *workspace) releaseIntoPool() {
	ws.buf1 = ws.pass1.Runes()[:0]
	ws.buf2 = ws.pass2.Runes()[:0]
	_ = globalWorkspacePool.opool.ReturnObject(globalWorkspacePool.ctx, ws)
}
