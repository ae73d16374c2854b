package viewer

import (
	"sync"
	"testing"

	"github.com/loptr-yoo/paking-ai-1/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("abc", "gemini-3-pro-preview")
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "abc", s.ID())

	require.NoError(t, s.Begin("two floors", nil))
	assert.Equal(t, StateLoading, s.State())

	assert.ErrorIs(t, s.Begin("again", nil), ErrBusy)

	require.NoError(t, s.Complete("<svg>one</svg>"))
	assert.Equal(t, StateDisplaying, s.State())
	assert.Equal(t, "<svg>one</svg>", s.SVG())

	assert.ErrorIs(t, s.Complete("<svg/>"), ErrNotLoading)
	assert.ErrorIs(t, s.Fail("late"), ErrNotLoading)
}

func TestSessionNewResultResetsView(t *testing.T) {
	s := NewSession("abc", "")
	require.NoError(t, s.Begin("", nil))
	require.NoError(t, s.Complete("<svg>one</svg>"))

	_, err := s.Apply(Action{Kind: ActionZoomIn})
	require.NoError(t, err)
	_, err = s.Apply(Action{Kind: ActionDragStart, X: 10, Y: 10})
	require.NoError(t, err)
	_, err = s.Apply(Action{Kind: ActionDragMove, X: 60, Y: 90})
	require.NoError(t, err)
	assert.NotEqual(t, Identity(), s.Transform())

	require.NoError(t, s.Begin("", nil))
	require.NoError(t, s.Complete("<svg>two</svg>"))

	assert.Equal(t, Identity(), s.Transform())
	assert.Equal(t, "<svg>two</svg>", s.SVG(), "result replaced wholesale")
	assert.False(t, s.Snapshot().Dragging)
}

func TestSessionFailureAndDismiss(t *testing.T) {
	t.Run("without earlier result", func(t *testing.T) {
		s := NewSession("abc", "")
		require.NoError(t, s.Begin("", nil))
		require.NoError(t, s.Fail("boom"))

		snap := s.Snapshot()
		assert.Equal(t, "error", snap.State)
		assert.Equal(t, "boom", snap.Error)

		s.Dismiss()
		assert.Equal(t, StateIdle, s.State())
		assert.Empty(t, s.Snapshot().Error)
	})

	t.Run("with earlier result", func(t *testing.T) {
		s := NewSession("abc", "")
		require.NoError(t, s.Begin("", nil))
		require.NoError(t, s.Complete("<svg>kept</svg>"))
		require.NoError(t, s.Begin("", nil))
		require.NoError(t, s.Fail("boom"))

		assert.Equal(t, "<svg>kept</svg>", s.SVG())

		s.Dismiss()
		assert.Equal(t, StateDisplaying, s.State())
	})

	t.Run("begin clears error", func(t *testing.T) {
		s := NewSession("abc", "")
		require.NoError(t, s.Begin("", nil))
		require.NoError(t, s.Fail("boom"))
		require.NoError(t, s.Begin("", nil))
		assert.Empty(t, s.Snapshot().Error)
	})

	t.Run("dismiss outside error is a no-op", func(t *testing.T) {
		s := NewSession("abc", "")
		s.Dismiss()
		assert.Equal(t, StateIdle, s.State())
	})
}

func TestSessionApply(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Transform
	}{
		{"zoom in default step", []Action{{Kind: ActionZoomIn}}, Transform{Scale: 1.2}},
		{"zoom out custom step", []Action{{Kind: ActionZoomOut, Step: 0.1}}, Transform{Scale: 0.9}},
		{"wheel", []Action{{Kind: ActionWheel, DeltaY: 3}}, Transform{Scale: 0.9}},
		{"pan", []Action{{Kind: ActionPan, DX: 5, DY: -5}}, Transform{Scale: 1, OffsetX: 5, OffsetY: -5}},
		{"reset", []Action{{Kind: ActionZoomIn}, {Kind: ActionPan, DX: 5}, {Kind: ActionReset}}, Identity()},
		{"drag", []Action{
			{Kind: ActionDragStart, X: 100, Y: 100},
			{Kind: ActionDragMove, X: 130, Y: 80},
			{Kind: ActionDragEnd},
			{Kind: ActionDragMove, X: 500, Y: 500},
		}, Transform{Scale: 1, OffsetX: 30, OffsetY: -20}},
		{"move without start", []Action{{Kind: ActionDragMove, X: 40, Y: 40}}, Identity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("abc", "")
			var got Transform
			for _, a := range tt.actions {
				var err error
				got, err = s.Apply(a)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		s := NewSession("abc", "")
		got, err := s.Apply(Action{Kind: "spin"})
		assert.ErrorIs(t, err, ErrUnknownAction)
		assert.Equal(t, Identity(), got)
	})
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession("abc", "gemini-3-pro-preview")
	img := &models.ImageItem{Source: "upload", Name: "plan.png", ImageWidth: 640, ImageHeight: 480}
	require.NoError(t, s.Begin("add ramps", img))

	img.Name = "mutated"
	snap := s.Snapshot()
	assert.Equal(t, "abc", snap.ID)
	assert.Equal(t, "loading", snap.State)
	assert.Equal(t, "add ramps", snap.Instruction)
	assert.True(t, snap.HasImage)
	require.NotNil(t, snap.Image)
	assert.Equal(t, 640, snap.Image.ImageWidth)
	assert.Equal(t, "plan.png", snap.Image.Name)
	assert.Equal(t, "gemini-3-pro-preview", snap.Model)
	assert.Equal(t, "translate(0px, 0px) scale(1)", snap.Transform.CSS)
	assert.False(t, snap.CreatedAt.IsZero())
}

func TestSessionConcurrentBegin(t *testing.T) {
	s := NewSession("abc", "")

	var wg sync.WaitGroup
	var mu sync.Mutex
	started := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Begin("", nil) == nil {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, started, "only one generation may be in flight")
}
