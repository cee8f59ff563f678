package creature

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsnake/internal/geom"
)

func outlineCreature(t *testing.T) *Creature {
	t.Helper()
	cfg, ok := Preset(PresetOutline)
	require.True(t, ok)
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestScenarioFirstStep(t *testing.T) {
	c := outlineCreature(t)

	res := c.Tick(geom.Pt(0, 0))

	require.True(t, res.HeadMoved)
	head := c.Snapshot().Head.Position
	assert.InDelta(t, 5, geom.Dist(geom.Pt(-150, -150), head), 1e-9)
	angle, _ := geom.Heading(geom.Pt(-150, -150), head)
	assert.InDelta(t, math.Pi/4, angle, 1e-9, "moved straight toward the target")
}

func TestScenarioParkAndResume(t *testing.T) {
	c := outlineCreature(t)
	target := geom.Pt(-148, -151) // within one step of the start

	var res TickResult
	for i := 0; i < 5; i++ {
		res = c.Tick(target)
		assert.False(t, res.HeadMoved)
	}
	assert.True(t, res.Stopped)
	parked := c.Snapshot().Head.Position
	assert.Equal(t, geom.Pt(-150, -150), parked)

	// Far enough to leave the hysteresis band: the flag clears first...
	far := geom.Pt(200, -150)
	res = c.Tick(far)
	assert.True(t, res.JustResumed)
	assert.False(t, res.Stopped)
	assert.False(t, res.HeadMoved)

	// ...and the head is moving again on the next tick.
	res = c.Tick(far)
	assert.True(t, res.HeadMoved)
	assert.InDelta(t, -145, c.Snapshot().Head.Position.X, 1e-9)
}

func TestFrozenChainWhileStopped(t *testing.T) {
	c := outlineCreature(t)
	for i := 0; i < 200; i++ {
		c.Tick(geom.Pt(300, 200))
	}
	require.True(t, c.Snapshot().Head.Stopped)

	before := c.Snapshot()
	head := before.Head.Position
	r := c.Config().HeadRadius + c.Config().HeadVelocity
	for i := 0; i < 100; i++ {
		// Wander around inside the parking band.
		res := c.Tick(geom.Polar(head, float64(i)*0.9, math.Mod(float64(i)*7, r)))
		require.True(t, res.Stopped)
		assert.Zero(t, res.SegmentsMoved)
	}
	after := c.Snapshot()

	diff := cmp.Diff(before, after, cmpopts.IgnoreFields(Snapshot{}, "Tick", "Target"))
	assert.Empty(t, diff, "nothing may drift while the head is parked")
}

func TestScenarioChainConverges(t *testing.T) {
	cfg := Config{
		HeadRadius:   20,
		HeadVelocity: 5,
		BodyDistance: 30,
		Radii:        []float64{10, 10, 10},
		Start:        geom.Pt(0, 0),
	}
	c, err := New(cfg)
	require.NoError(t, err)

	target := geom.Pt(400, 300)
	for i := 0; i < 300; i++ {
		c.Tick(target)
	}
	snap := c.Snapshot()
	require.True(t, snap.Head.Stopped)

	spine := snap.Spine()
	for i := 1; i < len(spine); i++ {
		assert.InDelta(t, 30, geom.Dist(spine[i-1], spine[i]), 1e-9, "link %d", i)
	}

	for i := 0; i < 50; i++ {
		c.Tick(target)
	}
	assert.Equal(t, spine, c.Snapshot().Spine(), "a parked creature stays put")
}

func TestPauseGatesEverything(t *testing.T) {
	c := outlineCreature(t)
	c.Tick(geom.Pt(0, 0))
	before := c.Snapshot()

	assert.True(t, c.TogglePause())
	sampled := 0
	src := TargetFunc(func() geom.Point {
		sampled++
		return geom.Pt(500, 500)
	})
	for i := 0; i < 10; i++ {
		res := c.Step(src)
		assert.True(t, res.Paused)
		res = c.Tick(geom.Pt(500, 500))
		assert.True(t, res.Paused)
	}
	assert.Zero(t, sampled, "a paused creature does not read its target")
	assert.Equal(t, uint64(1), c.Ticks())

	after := c.Snapshot()
	after.Paused = false
	assert.Empty(t, cmp.Diff(before, after))

	assert.False(t, c.TogglePause())
	res := c.Step(src)
	assert.True(t, res.HeadMoved)
	assert.Equal(t, 1, sampled)
}

func TestSetPausedIsIdempotent(t *testing.T) {
	c := outlineCreature(t)
	c.SetPaused(true)
	c.SetPaused(true)
	assert.True(t, c.Paused())
	assert.True(t, c.Tick(geom.Pt(500, 500)).Paused)
	assert.Zero(t, c.Ticks())

	c.SetPaused(false)
	assert.False(t, c.Paused())
	res := c.Tick(geom.Pt(500, 500))
	assert.False(t, res.Paused)
	assert.Equal(t, uint64(1), c.Ticks())
}

func TestSnapshotIsDetached(t *testing.T) {
	c := outlineCreature(t)
	for i := 0; i < 40; i++ {
		c.Tick(geom.Pt(300, 0))
	}
	snap := c.Snapshot()
	snap.Segments[0].Position = geom.Pt(1e6, 1e6)
	snap.Head.Ring[0] = geom.Pt(1e6, 1e6)
	snap.Tail = append(snap.Tail[:0], geom.Pt(1e6, 1e6))

	fresh := c.Snapshot()
	assert.NotEqual(t, geom.Pt(1e6, 1e6), fresh.Segments[0].Position)
	assert.NotEqual(t, geom.Pt(1e6, 1e6), fresh.Head.Ring[0])
	assert.NotEqual(t, geom.Pt(1e6, 1e6), fresh.Tail[0])
}

func TestOutlineAndTriangles(t *testing.T) {
	c := outlineCreature(t)
	assert.Nil(t, c.Snapshot().Outline(), "no outline before the head has moved")

	for i := 0; i < 150; i++ {
		c.Tick(geom.Pt(600, 300))
	}
	snap := c.Snapshot()
	for i, s := range snap.Segments {
		require.True(t, s.Oriented, "segment %d", i)
	}
	require.True(t, snap.TailReady())

	cfg := c.Config()
	n, h, k := cfg.Segments(), cfg.HeadDots, cfg.TailDots
	outline := snap.Outline()
	assert.Len(t, outline, h+2*n+k)
	assert.Equal(t, snap.Head.Ring[0], outline[0])
	assert.Equal(t, snap.Segments[0].Right, outline[len(outline)-1], "closes back at the first right point")

	tris := snap.Triangles()
	assert.Len(t, tris, (h-1)+2+2*(n-1)+(k-1))

	lo, hi := snap.Bounds()
	for _, p := range outline {
		assert.True(t, p.X >= lo.X-1e-9 && p.X <= hi.X+1e-9 && p.Y >= lo.Y-1e-9 && p.Y <= hi.Y+1e-9, "outline point %v inside bounds", p)
	}
}

func TestBasicPresetHasNoContour(t *testing.T) {
	cfg, _ := Preset(PresetBasic)
	c := MustNew(cfg)
	for i := 0; i < 100; i++ {
		c.Tick(geom.Pt(400, 200))
	}
	snap := c.Snapshot()
	assert.Empty(t, snap.Head.Ring)
	assert.Empty(t, snap.Tail)
	assert.Nil(t, snap.Outline())
	assert.Nil(t, snap.Triangles())
	for _, s := range snap.Segments {
		assert.False(t, s.Oriented)
	}
	assert.True(t, snap.Head.Oriented, "eyes are still placed")
}

func TestMustNewPanicsOnBadConfig(t *testing.T) {
	assert.Panics(t, func() { MustNew(Config{}) })
}
