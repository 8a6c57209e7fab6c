package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs every phase boundary and fails if two phases overlap.
type recorder struct {
	mu      sync.Mutex
	events  []string
	active  int32
	overlap int32
	delay   time.Duration
	gate    chan struct{} // when set, Exit blocks until it is closed
}

func (r *recorder) log(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) phase(ctx context.Context, name, key string, gate chan struct{}) error {
	if atomic.AddInt32(&r.active, 1) > 1 {
		atomic.StoreInt32(&r.overlap, 1)
	}
	defer atomic.AddInt32(&r.active, -1)

	r.log(name + ":start:" + key)
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
		}
	}
	time.Sleep(r.delay)
	r.log(name + ":end:" + key)
	return nil
}

func (r *recorder) Exit(ctx context.Context, key string) error {
	r.mu.Lock()
	gate := r.gate
	r.mu.Unlock()
	return r.phase(ctx, "exit", key, gate)
}

func (r *recorder) Enter(ctx context.Context, key string) error {
	return r.phase(ctx, "enter", key, nil)
}

type testView struct {
	key       string
	unmounted *int32
}

func (v *testView) Unmount() {
	atomic.AddInt32(v.unmounted, 1)
}

type mountCounter struct {
	mounts    int32
	unmounts  int32
	failPaths map[string]error
	panicPath string
}

func (mc *mountCounter) page() Page {
	return PageFunc(func(ctx context.Context, m Match) (View, error) {
		if m.Key() == mc.panicPath {
			panic("boom")
		}
		if err, ok := mc.failPaths[m.Key()]; ok {
			return nil, err
		}
		atomic.AddInt32(&mc.mounts, 1)
		return &testView{key: m.Key(), unmounted: &mc.unmounts}, nil
	})
}

func newTestOrchestrator(t *testing.T, tr Transition, mc *mountCounter, opts ...Option) *Orchestrator {
	t.Helper()
	page := mc.page()
	table := NewTable(
		Route{Pattern: "/", Name: "home", Page: page},
		Route{Pattern: "/about", Name: "about", Page: page},
		Route{Pattern: "/news", Name: "news", Page: page},
		Route{Pattern: "/contact", Name: "contact", Page: page},
		Route{Pattern: "/testimonials/:category", Name: "testimonial", Page: page},
	)
	o := New(table, tr, opts...)
	t.Cleanup(o.Close)
	return o
}

func waitIdle(t *testing.T, o *Orchestrator) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, o.Wait(ctx))
}

func TestSequentialNavigationNeverOverlaps(t *testing.T) {
	rec := &recorder{delay: 2 * time.Millisecond}
	mc := &mountCounter{}
	o := newTestOrchestrator(t, rec, mc)

	paths := []string{"/", "/about", "/news", "/contact", "/testimonials/expert"}
	for _, p := range paths {
		started, err := o.Navigate(p, nil)
		require.NoError(t, err)
		assert.True(t, started)
		waitIdle(t, o)
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&rec.overlap))

	events := rec.Events()
	for i := 1; i < len(paths); i++ {
		exitEnd := indexOf(events, "exit:end:"+paths[i-1])
		enterStart := indexOf(events, "enter:start:"+paths[i])
		require.GreaterOrEqual(t, exitEnd, 0)
		require.GreaterOrEqual(t, enterStart, 0)
		assert.Less(t, exitEnd, enterStart, "exit of %s must finish before enter of %s", paths[i-1], paths[i])
	}

	state := o.State()
	assert.Equal(t, "/testimonials/expert", state.Path)
	assert.Equal(t, PhaseIdle, state.Phase)
}

func TestNavigateToCurrentPathIsNoop(t *testing.T) {
	rec := &recorder{}
	mc := &mountCounter{}
	o := newTestOrchestrator(t, rec, mc)

	_, err := o.Navigate("/about", nil)
	require.NoError(t, err)
	waitIdle(t, o)
	before := len(rec.Events())

	started, err := o.Navigate("/about/", nil)
	require.NoError(t, err)
	assert.False(t, started)

	started, err = o.Navigate("/about?ref=footer", nil)
	require.NoError(t, err)
	assert.False(t, started)

	waitIdle(t, o)
	assert.Equal(t, before, len(rec.Events()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&mc.mounts))
	assert.Equal(t, int32(0), atomic.LoadInt32(&mc.unmounts))
}

func TestDifferentParamsRemountSameRoute(t *testing.T) {
	mc := &mountCounter{}
	o := newTestOrchestrator(t, TimedTransition{}, mc)

	_, _, err := o.Visit(context.Background(), "/testimonials/expert", nil)
	require.NoError(t, err)
	_, key, err := o.Visit(context.Background(), "/testimonials/character", nil)
	require.NoError(t, err)

	assert.Equal(t, "/testimonials/character", key)
	assert.Equal(t, int32(2), atomic.LoadInt32(&mc.mounts))
	assert.Equal(t, int32(1), atomic.LoadInt32(&mc.unmounts))
}

func TestLastPendingTargetWins(t *testing.T) {
	gate := make(chan struct{})
	rec := &recorder{}
	mc := &mountCounter{}
	o := newTestOrchestrator(t, rec, mc)

	_, _, err := o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	rec.mu.Lock()
	rec.gate = gate
	rec.mu.Unlock()

	_, err = o.Navigate("/about", nil)
	require.NoError(t, err)
	_, err = o.Navigate("/news", nil)
	require.NoError(t, err)
	_, err = o.Navigate("/contact", nil)
	require.NoError(t, err)
	assert.Equal(t, "/contact", o.State().Pending)

	rec.mu.Lock()
	rec.gate = nil
	rec.mu.Unlock()
	close(gate)
	waitIdle(t, o)

	_, key := o.Current()
	assert.Equal(t, "/contact", key)

	events := rec.Events()
	assert.Equal(t, -1, indexOf(events, "enter:start:/news"), "superseded target must never mount")
	assert.GreaterOrEqual(t, indexOf(events, "enter:start:/about"), 0, "in-flight target completes first")
	assert.Equal(t, int32(0), atomic.LoadInt32(&rec.overlap))
}

func TestVisitNeverReturnsAnotherPage(t *testing.T) {
	gate := make(chan struct{})
	rec := &recorder{}
	o := newTestOrchestrator(t, rec, &mountCounter{})

	_, _, err := o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	rec.mu.Lock()
	rec.gate = gate
	rec.mu.Unlock()

	type result struct {
		view View
		key  string
		err  error
	}
	visit := func(path string) chan result {
		ch := make(chan result, 1)
		go func() {
			view, key, err := o.Visit(context.Background(), path, nil)
			ch <- result{view, key, err}
		}()
		return ch
	}

	about := visit("/about")
	require.Eventually(t, func() bool { return o.State().Phase == PhaseExiting }, time.Second, time.Millisecond)
	news := visit("/news")
	require.Eventually(t, func() bool { return o.State().Pending == "/news" }, time.Second, time.Millisecond)

	rec.mu.Lock()
	rec.gate = nil
	rec.mu.Unlock()
	close(gate)

	r := <-about
	assert.ErrorIs(t, r.err, ErrSuperseded)
	assert.Nil(t, r.view)
	assert.Empty(t, r.key)

	r = <-news
	require.NoError(t, r.err)
	assert.Equal(t, "/news", r.key)
	assert.Equal(t, "/news", r.view.(*testView).key)
}

func TestRequestForInFlightTargetClearsPending(t *testing.T) {
	gate := make(chan struct{})
	rec := &recorder{}
	mc := &mountCounter{}
	o := newTestOrchestrator(t, rec, mc)

	_, _, err := o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	rec.mu.Lock()
	rec.gate = gate
	rec.mu.Unlock()

	_, err = o.Navigate("/about", nil)
	require.NoError(t, err)
	_, err = o.Navigate("/news", nil)
	require.NoError(t, err)
	_, err = o.Navigate("/about", nil)
	require.NoError(t, err)
	assert.Empty(t, o.State().Pending)

	close(gate)
	waitIdle(t, o)

	_, key := o.Current()
	assert.Equal(t, "/about", key)
}

func TestMountFailureResetsToIdle(t *testing.T) {
	var boundaryPath string
	var boundaryErr error
	mc := &mountCounter{failPaths: map[string]error{"/news": errors.New("backend down")}}
	o := newTestOrchestrator(t, TimedTransition{}, mc, WithErrorBoundary(func(path string, err error) {
		boundaryPath, boundaryErr = path, err
	}))

	_, _, err := o.Visit(context.Background(), "/about", nil)
	require.NoError(t, err)

	_, _, err = o.Visit(context.Background(), "/news", nil)
	var mountErr *MountError
	require.ErrorAs(t, err, &mountErr)
	assert.Equal(t, "/news", mountErr.Path)
	assert.Equal(t, "/news", boundaryPath)
	assert.ErrorContains(t, boundaryErr, "backend down")

	state := o.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.Path)

	// Navigation still works after the failure, including a retry of the same path.
	started, err := o.Navigate("/news", nil)
	require.NoError(t, err)
	assert.True(t, started)
	waitIdle(t, o)

	_, key, err := o.Visit(context.Background(), "/contact", nil)
	require.NoError(t, err)
	assert.Equal(t, "/contact", key)
}

func TestMountPanicIsRecovered(t *testing.T) {
	var observed []string
	var mu sync.Mutex
	mc := &mountCounter{panicPath: "/contact"}
	o := newTestOrchestrator(t, TimedTransition{}, mc, WithObserver(func(path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		observed = append(observed, fmt.Sprintf("%s:%v", path, err != nil))
	}))

	_, _, err := o.Visit(context.Background(), "/contact", nil)
	assert.ErrorContains(t, err, "panic: boom")
	assert.Equal(t, PhaseIdle, o.State().Phase)

	_, _, err = o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/contact:true", "/:false"}, observed)
}

func TestNavigateUnknownPath(t *testing.T) {
	o := newTestOrchestrator(t, TimedTransition{}, &mountCounter{})

	_, err := o.Navigate("/missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = o.Navigate("/testimonials/expert/extra", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayloadReachesPage(t *testing.T) {
	var got Payload
	table := NewTable(Route{Pattern: "/askai", Name: "askai", Page: PageFunc(func(ctx context.Context, m Match) (View, error) {
		got = m.Payload
		return &testView{unmounted: new(int32)}, nil
	})})
	o := New(table, TimedTransition{})
	defer o.Close()

	_, _, err := o.Visit(context.Background(), "/askai", Payload{"description": "Family law"})
	require.NoError(t, err)
	assert.Equal(t, "Family law", got["description"])
}

func TestCloseUnmountsAndRejects(t *testing.T) {
	mc := &mountCounter{}
	o := newTestOrchestrator(t, TimedTransition{}, mc)

	_, _, err := o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	o.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&mc.unmounts))

	_, err = o.Navigate("/about", nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStateChangesArePublished(t *testing.T) {
	o := newTestOrchestrator(t, TimedTransition{}, &mountCounter{})

	var mu sync.Mutex
	var phases []Phase
	cancel := o.States().Subscribe(func(s State) {
		mu.Lock()
		phases = append(phases, s.Phase)
		mu.Unlock()
	})
	defer cancel()

	_, _, err := o.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(phases) > 0 && phases[len(phases)-1] == PhaseIdle
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, phases, PhaseExiting)
	assert.Contains(t, phases, PhaseEntering)
}

func TestTimedTransitionHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := TimedTransition{ExitDuration: time.Hour}
	assert.ErrorIs(t, tr.Exit(ctx, "/"), context.Canceled)
	assert.NoError(t, TimedTransition{}.Enter(context.Background(), "/"))
}

func indexOf(events []string, want string) int {
	for i, e := range events {
		if e == want {
			return i
		}
	}
	return -1
}
