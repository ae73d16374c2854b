package legend

import "fmt"

// SemanticType identifies one of the labelled feature types drawn on a layout
type SemanticType string

const (
	DrivingLane      SemanticType = "Driving Lane"
	ParkingSpace     SemanticType = "Parking Space"
	Pillar           SemanticType = "Pillar"
	Wall             SemanticType = "Wall"
	Entrance         SemanticType = "Entrance"
	Exit             SemanticType = "Exit"
	Staircase        SemanticType = "Staircase"
	Elevator         SemanticType = "Elevator"
	ChargingStation  SemanticType = "Charging Station"
	PedestrianPath   SemanticType = "Pedestrian Path"
	Ground           SemanticType = "Ground"
	Slope            SemanticType = "Slope"
	GuidanceSign     SemanticType = "Guidance Sign"
	SafeExit         SemanticType = "Safe Exit"
	DecelerationZone SemanticType = "Deceleration Zone"
	FireExtinguisher SemanticType = "Fire Extinguisher"
	GroundLine       SemanticType = "Ground Line"
	ConvexMirror     SemanticType = "Convex Mirror"
)

// Category is the display and prompt record for a semantic type
type Category struct {
	Type        SemanticType `json:"type" yaml:"type"`
	ChineseName string       `json:"chinese_name" yaml:"chinese_name"`
	Color       string       `json:"color" yaml:"color"`
	Hint        string       `json:"hint" yaml:"hint"`
}

// Name returns the English name of the category
func (c Category) Name() string {
	return string(c.Type)
}

// Label returns the legend label, e.g. "Ground (地面)"
func (c Category) Label() string {
	return fmt.Sprintf("%s (%s)", c.Type, c.ChineseName)
}

var categories = map[SemanticType]Category{
	DrivingLane:      {DrivingLane, "行车道", "#374151", "Main dark gray paths for cars."},
	ParkingSpace:     {ParkingSpace, "停车位", "#FBCFE8", "Pink rectangles with white strokes."},
	Pillar:           {Pillar, "承重柱", "#111827", "Black squares/rectangles in a grid."},
	Wall:             {Wall, "墙", "#000000", "Thick black boundary lines."},
	Entrance:         {Entrance, "入口", "#3B82F6", "Blue entry zones/arrows."},
	Exit:             {Exit, "出口", "#EF4444", "Red exit zones/arrows."},
	Staircase:        {Staircase, "楼梯间", "#8B5CF6", "Purple rectangular areas."},
	Elevator:         {Elevator, "电梯井", "#6366F1", "Indigo boxes."},
	ChargingStation:  {ChargingStation, "充电桩", "#34D399", "Green spots or icons for EVs."},
	PedestrianPath:   {PedestrianPath, "人行道", "#FFFFFF", "White walkways running PARALLEL to the driving lanes/ground lines."},
	Ground:           {Ground, "地面", "#10B981", "Green background area (Islands/Plazas) where cars DON'T drive."},
	Slope:            {Slope, "坡道", "#F59E0B", "Yellow hatched areas. MUST OVERLAP with Driving Lanes (they are sloped lanes)."},
	GuidanceSign:     {GuidanceSign, "导向牌", "#60A5FA", "Small blue rectangles overhead."},
	SafeExit:         {SafeExit, "安全出口", "#22C55E", "Green emergency exit markers."},
	DecelerationZone: {DecelerationZone, "减速带", "#FCD34D", "Yellow stripes running PERPENDICULAR (across) to the driving lane."},
	FireExtinguisher: {FireExtinguisher, "消防设备", "#DC2626", "Small red boxes."},
	GroundLine:       {GroundLine, "地面线", "#FFFFFF", "White lane dividers, arrows, parking lines."},
	ConvexMirror:     {ConvexMirror, "凸面镜", "#F87171", "Small red circles."},
}

// displayOrder is the order of the legend panel.
var displayOrder = []SemanticType{
	Ground,
	DrivingLane,
	ParkingSpace,
	Wall,
	Pillar,
	PedestrianPath,
	Entrance,
	Exit,
	ChargingStation,
	Elevator,
	Staircase,
	Slope,
	FireExtinguisher,
	SafeExit,
	GuidanceSign,
	DecelerationZone,
	ConvexMirror,
	GroundLine,
}

// promptOrder is the numbering used in the model's system instruction.
var promptOrder = []SemanticType{
	DrivingLane,
	ParkingSpace,
	Pillar,
	Wall,
	Entrance,
	Exit,
	Staircase,
	Elevator,
	ChargingStation,
	PedestrianPath,
	Ground,
	Slope,
	GuidanceSign,
	SafeExit,
	DecelerationZone,
	FireExtinguisher,
	GroundLine,
	ConvexMirror,
}

// Catalog returns the categories in legend display order.
// The returned slice is a copy.
func Catalog() []Category {
	return collect(displayOrder)
}

// PromptOrder returns the categories in the order they are enumerated
// to the model.
func PromptOrder() []Category {
	return collect(promptOrder)
}

// Lookup returns the category for a semantic type
func Lookup(t SemanticType) (Category, bool) {
	c, ok := categories[t]
	return c, ok
}

// Len is the number of semantic categories
func Len() int {
	return len(categories)
}

func collect(order []SemanticType) []Category {
	out := make([]Category, 0, len(order))
	for _, t := range order {
		out = append(out, categories[t])
	}
	return out
}
