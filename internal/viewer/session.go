package viewer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/loptr-yoo/paking-ai-1/internal/models"
)

// State is the lifecycle state of a session
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateDisplaying State = "displaying"
	StateError      State = "error"
)

var (
	// ErrBusy is returned when a generation is already in flight
	ErrBusy = errors.New("a generation is already in progress")
	// ErrNotLoading is returned when a result arrives without a pending generation
	ErrNotLoading = errors.New("no generation in progress")
	// ErrUnknownAction is returned for an unsupported view action
	ErrUnknownAction = errors.New("unknown view action")
)

// Action kinds accepted by Apply
const (
	ActionZoomIn    = "zoom_in"
	ActionZoomOut   = "zoom_out"
	ActionWheel     = "wheel"
	ActionReset     = "reset"
	ActionPan       = "pan"
	ActionDragStart = "drag_start"
	ActionDragMove  = "drag_move"
	ActionDragEnd   = "drag_end"
)

// Action is one viewer interaction
type Action struct {
	Kind   string  `json:"action"`
	Step   float64 `json:"step,omitempty"`
	DeltaY float64 `json:"delta_y,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
}

// Session holds the generation state and the view of one user.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id          string
	model       string
	state       State
	svg         string
	errMsg      string
	instruction string
	image       *models.ImageItem
	transform   Transform
	drag        Drag
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSession returns an idle session
func NewSession(id, model string) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		model:     model,
		state:     StateIdle,
		transform: Identity(),
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SVG returns the last successful result, or "" when there is none
func (s *Session) SVG() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svg
}

// Transform returns the current view transform
func (s *Session) Transform() Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transform
}

// Begin marks a generation as in flight and clears any previous error.
// image may be nil when no reference image was supplied.
func (s *Session) Begin(instruction string, image *models.ImageItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoading {
		return ErrBusy
	}
	s.state = StateLoading
	s.errMsg = ""
	s.instruction = instruction
	s.image = nil
	if image != nil {
		img := *image
		s.image = &img
	}
	s.touch()
	return nil
}

// Complete stores a new result, replacing the previous one, and resets the view
func (s *Session) Complete(svg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrNotLoading
	}
	s.state = StateDisplaying
	s.svg = svg
	s.transform = Identity()
	s.drag = s.drag.End()
	s.touch()
	return nil
}

// Fail records a failure message. A previous result is kept.
func (s *Session) Fail(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrNotLoading
	}
	s.state = StateError
	s.errMsg = message
	s.touch()
	return nil
}

// Dismiss clears the error banner. It never retries.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateError {
		return
	}
	s.errMsg = ""
	if s.svg != "" {
		s.state = StateDisplaying
	} else {
		s.state = StateIdle
	}
	s.touch()
}

// Apply performs a view action and returns the resulting transform
func (s *Session) Apply(a Action) (Transform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := a.Step
	if step <= 0 {
		step = ButtonStep
	}

	switch a.Kind {
	case ActionZoomIn:
		s.transform = s.transform.ZoomIn(step)
	case ActionZoomOut:
		s.transform = s.transform.ZoomOut(step)
	case ActionWheel:
		s.transform = s.transform.Wheel(a.DeltaY)
	case ActionReset:
		s.transform = Identity()
	case ActionPan:
		s.transform = s.transform.Pan(a.DX, a.DY)
	case ActionDragStart:
		s.drag = StartDrag(s.transform, a.X, a.Y)
	case ActionDragMove:
		s.transform = s.drag.Move(s.transform, a.X, a.Y)
	case ActionDragEnd:
		s.drag = s.drag.End()
	default:
		return s.transform, fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}

	s.touch()
	return s.transform, nil
}

// Snapshot returns the JSON view of the session
func (s *Session) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.Session{
		ID:          s.id,
		State:       string(s.state),
		SVG:         s.svg,
		Error:       s.errMsg,
		Instruction: s.instruction,
		HasImage:    s.image != nil,
		Transform: models.ViewTransform{
			Scale:   s.transform.Scale,
			OffsetX: s.transform.OffsetX,
			OffsetY: s.transform.OffsetY,
			CSS:     s.transform.CSS(),
		},
		Dragging:  s.drag.Active,
		Model:     s.model,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
	if s.image != nil {
		img := *s.image
		snap.Image = &img
	}
	return snap
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}
