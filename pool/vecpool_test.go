// File: pool/vecpool_test.go
// Author: momentics <momentics@gmail.com>
//
// Vector pool reuse and drain semantics.

package pool_test

import (
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/momentics/fixvec/fake"
	"github.com/momentics/fixvec/pool"
	"github.com/momentics/fixvec/vec"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestVecPoolReuse(t *testing.T) {
	p := pool.NewVecPool[int](16, 4)
	v1 := p.Get()
	if v1.Cap() != 16 || v1.Len() != 0 {
		t.Fatalf("fresh vector: cap=%d len=%d", v1.Cap(), v1.Len())
	}
	if err := v1.Push(42); err != nil {
		t.Fatalf("push: %v", err)
	}
	p.Put(v1)

	v2 := p.Get()
	if v2 != v1 {
		t.Error("pool did not reuse the shelved vector")
	}
	if v2.Len() != 0 {
		t.Errorf("reused vector not drained: len=%d", v2.Len())
	}
}

func TestVecPoolPutDrainsReleases(t *testing.T) {
	p := pool.NewVecPool[*fake.Resource](4, 2)
	v := p.Get()
	d := fake.NewResource(1).Strict()
	if err := v.Push(d); err != nil {
		t.Fatalf("push: %v", err)
	}
	p.Put(v)
	if d.ReleaseCount() != 1 {
		t.Errorf("put released the element %d times, want 1", d.ReleaseCount())
	}
}

func TestVecPoolShelfOverflowCloses(t *testing.T) {
	p := pool.NewVecPool[int](4, 1)
	v1, v2 := p.Get(), p.Get()
	p.Put(v1)
	p.Put(v2) // shelf full: must be closed, not hoarded
	if !v2.Closed() {
		t.Error("overflowing vector was not closed")
	}
	st := p.Stats()
	if st.Discards != 1 || st.Idle != 1 {
		t.Errorf("stats after overflow: %+v", st)
	}
}

func TestVecPoolForeignClassClosed(t *testing.T) {
	p := pool.NewVecPool[int](4, 2)
	alien := vec.New[int](8)
	p.Put(alien)
	if !alien.Closed() {
		t.Error("foreign-class vector was not closed")
	}
	if got := p.Get().Cap(); got != 4 {
		t.Errorf("pool handed out a foreign-class vector: cap=%d", got)
	}
}

func TestVecPoolIgnoresNilAndClosed(t *testing.T) {
	p := pool.NewVecPool[int](4, 2)
	p.Put(nil)
	closed := vec.New[int](4)
	_ = closed.Close()
	p.Put(closed)
	if got := p.Get(); got.Closed() {
		t.Error("pool shelved a closed vector")
	}
}

func TestVecPoolStats(t *testing.T) {
	p := pool.NewVecPool[int](4, 2)
	v := p.Get()
	p.Put(v)
	_ = p.Get()
	st := p.Stats()
	if st.Gets != 2 || st.Puts != 1 || st.Misses != 1 {
		t.Errorf("stats: %+v", st)
	}
	if st.InUse() != 1 {
		t.Errorf("in use: %d", st.InUse())
	}
}

func TestVecPoolConcurrentChurn(t *testing.T) {
	p := pool.NewVecPool[int](32, 8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := p.Get()
				if err := v.Push(i); err != nil {
					t.Errorf("push: %v", err)
					return
				}
				p.Put(v)
			}
		}()
	}
	wg.Wait()
	st := p.Stats()
	if st.Gets != 8000 || st.Puts+st.Discards < 8000 {
		t.Errorf("stats after churn: %+v", st)
	}
}
