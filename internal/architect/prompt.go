package architect

import (
	"fmt"
	"strings"

	"github.com/loptr-yoo/paking-ai-1/internal/legend"
)

const (
	// DefaultReferenceInstruction is used when a reference image is sent without text
	DefaultReferenceInstruction = "Recreate the reference layout with high semantic fidelity."
	// DefaultSceneDescription is used when neither an image nor text is sent
	DefaultSceneDescription = "Complex commercial underground parking lot."
)

// semanticDefinitions renders the numbered category list of the system instruction
func semanticDefinitions() string {
	var b strings.Builder
	for i, c := range legend.PromptOrder() {
		fmt.Fprintf(&b, "    %d. %s (%s) - Color: %s. %s\n", i+1, c.Name(), c.ChineseName, c.Color, c.Hint)
	}
	return b.String()
}

func color(t legend.SemanticType) string {
	c, _ := legend.Lookup(t)
	return c.Color
}

// SystemInstruction builds the fixed rulebook sent with every generation call
func SystemInstruction() string {
	return fmt.Sprintf(`You are an expert architectural engineer and SVG coding specialist.
Your task is to generate a HIGHLY COMPLEX, DETAILED, and SEMANTICALLY ACCURATE SVG map of an underground parking lot.

The output must be raw SVG code.

**CRITICAL SEMANTIC REQUIREMENTS**:
You MUST include elements representing the following %d semantics. Use the specific colors defined below:
%s
**1. GEOMETRY & VISUAL RULES**:
- **Pedestrian Paths**: Must be **WHITE (%s)** and run **PARALLEL** to the Driving Lane / Ground Line direction (e.g., walkways flanking the lanes).
- **Deceleration Zones**: Must be **YELLOW (%s)** stripes that run **PERPENDICULAR** to the Driving Lane / Ground Line direction (crossing the path of the car).
- **Ground**: The **Green (%s)** area represents the "Floor" or "Islands" where buildings and parking spaces sit.
- **Driving Lanes**: Dark Grey (%s) lanes cut through the Green Ground.
- **Slope**: Ramps (%s) are part of the Driving Lane, so they MUST **OVERLAP/COINCIDE** spatially with a Driving Lane segment.

**2. SPATIAL CONSTRAINT MODULE (Strict Enforcement)**:
- **Non-Overlap Rule**: Parking Spaces, Stairs, Elevators, Pillars, and Walls MUST be placed inside the Ground (Green) areas but MUST NOT overlap with the Driving Lanes (Dark Grey).
- **Boundary Rule**: All architectural elements (Parking, Stairs, etc.) must be contained within the Ground boundary. Do not place items in the void outside the map.
- **Lane Accessories**: Safe Exit, Guidance Sign, Deceleration Zone, and Convex Mirror MUST be placed ON or IMMEDIATELY ADJACENT to Driving Lanes.

**3. DENSITY**:
- Maximize the use of Ground space for Parking Spaces. Minimize empty green space.

**Output Format**:
- Return ONLY the SVG string.
- Use viewBox="0 0 1000 800" (or similar).
- Ensure code is clean.
`,
		legend.Len(),
		semanticDefinitions(),
		color(legend.PedestrianPath),
		color(legend.DecelerationZone),
		color(legend.Ground),
		color(legend.DrivingLane),
		color(legend.Slope),
	)
}

const constraintRecap = `
**Recall Visual Constraints**:
1. **Pedestrian Paths**: WHITE, running PARALLEL to the lanes.
2. **Deceleration Zones**: YELLOW, running PERPENDICULAR to the lanes.
3. **Ground**: GREEN background.
4. **Slope**: Must overlap with Driving Lanes.

**Recall Spatial Constraints**:
- Parking spaces, Buildings, and Pillars must NOT overlap with Driving Lanes.
- Parking spaces and Buildings must NOT go outside the Ground area.
- Parking spaces should fill the available Ground area.
`

// TaskInstruction builds the user-facing task text. With a reference image the
// model re-renders the reference topology, otherwise it starts from scratch.
func TaskInstruction(hasImage bool, instruction string) string {
	var task string
	if hasImage {
		if instruction == "" {
			instruction = DefaultReferenceInstruction
		}
		task = fmt.Sprintf(`**TASK**: Analyze the structure and topology of the provided REFERENCE IMAGE.
Generate a NEW SVG layout that **MIMICS** the reference image's driving loop, building placement, and general shape.
However, you must RE-RENDER it using the strict semantic colors and rules defined above (Green Ground, White Paths, etc.).

Apply the following specific modifications to the reference layout:
"%s"
`, instruction)
	} else {
		if instruction == "" {
			instruction = DefaultSceneDescription
		}
		task = fmt.Sprintf(`**TASK**: Generate a high-density underground parking lot map from scratch.
Description: "%s"
`, instruction)
	}

	return task + constraintRecap
}
