package wireframe

// Canvas bounds for both dimensions, in pixels.
const (
	MinCanvasDim = 200
	MaxCanvasDim = 2000
)

// Documented request defaults. Classifier suggestions replace these only when
// the caller left the corresponding field untouched.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// Canvas is the drawing surface for one synthesis and render pass.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InBounds reports whether both dimensions lie within [MinCanvasDim, MaxCanvasDim].
func (c Canvas) InBounds() bool {
	return c.Width >= MinCanvasDim && c.Width <= MaxCanvasDim &&
		c.Height >= MinCanvasDim && c.Height <= MaxCanvasDim
}

// IsDefault reports whether the canvas equals the documented default size.
func (c Canvas) IsDefault() bool {
	return c.Width == DefaultWidth && c.Height == DefaultHeight
}

// Component is a single positioned UI element. Geometry is integer pixels
// relative to the canvas origin (top-left). Children is usually empty; it
// exists so consumers can regroup elements during editing.
type Component struct {
	Type       ComponentType `json:"type"`
	Label      string        `json:"label"`
	X          int           `json:"x"`
	Y          int           `json:"y"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Properties Properties    `json:"properties,omitempty"`
	Children   []Component   `json:"children,omitempty"`
}

// Within reports whether the component's box lies entirely inside the canvas.
func (c Component) Within(canvas Canvas) bool {
	return c.X >= 0 && c.Y >= 0 &&
		c.X+c.Width <= canvas.Width && c.Y+c.Height <= canvas.Height
}

// RequirementFlags are independent boolean probes extracted from the prompt.
type RequirementFlags struct {
	Responsive     bool `json:"responsive"`
	DarkMode       bool `json:"dark_mode"`
	Accessibility  bool `json:"accessibility"`
	Animations     bool `json:"animations"`
	Search         bool `json:"search"`
	UserAuth       bool `json:"user_auth"`
	SocialFeatures bool `json:"social_features"`
	Ecommerce      bool `json:"ecommerce"`
}

// Classification is the classifier's verdict on a prompt: the layout
// archetype, the component set to synthesize, the rendering fidelity, the
// requirement flags, a suggested canvas size, and a confidence score in [0,1].
type Classification struct {
	Archetype       Archetype        `json:"archetype"`
	Components      []ComponentType  `json:"components"`
	Fidelity        Fidelity         `json:"fidelity"`
	Requirements    RequirementFlags `json:"requirements"`
	SuggestedWidth  int              `json:"suggested_width"`
	SuggestedHeight int              `json:"suggested_height"`
	Confidence      float64          `json:"confidence"`
}

// HasComponent reports whether the classification's component set contains t.
func (c Classification) HasComponent(t ComponentType) bool {
	for _, ct := range c.Components {
		if ct == t {
			return true
		}
	}
	return false
}
