package sandbox

// PolygonMode selects how polygons are rasterized.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

func (m PolygonMode) String() string {
	if m == PolygonLine {
		return "line"
	}
	return "fill"
}

// RasterState is the fixed-function state applied before drawing.
type RasterState struct {
	CullFace   bool
	DepthTest  bool
	Polygon    PolygonMode
	LineSmooth bool
}

// FillState culls back faces and fills polygons.
var FillState = RasterState{CullFace: true, DepthTest: true, Polygon: PolygonFill}

// XRayState draws every face as smoothed lines.
var XRayState = RasterState{CullFace: false, DepthTest: true, Polygon: PolygonLine, LineSmooth: true}

// RasterFor returns XRayState while the toggle key is held and FillState otherwise.
func RasterFor(xrayDown bool) RasterState {
	if xrayDown {
		return XRayState
	}
	return FillState
}
