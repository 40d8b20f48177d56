package geom

import "strings"

// Tool selects how a gesture becomes geometry
type Tool string

const (
	ToolBrush     Tool = "brush"
	ToolEraser    Tool = "eraser"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolTriangle  Tool = "triangle"
)

// Tools lists every supported tool in toolbar order
var Tools = []Tool{ToolBrush, ToolEraser, ToolRectangle, ToolCircle, ToolTriangle}

// ParseTool maps a name to a Tool, case-insensitively
func ParseTool(name string) (Tool, bool) {
	t := Tool(strings.ToLower(strings.TrimSpace(name)))
	return t, t.Valid()
}

func (t Tool) Valid() bool {
	switch t {
	case ToolBrush, ToolEraser, ToolRectangle, ToolCircle, ToolTriangle:
		return true
	}
	return false
}

// Freehand reports whether the tool records every pointer position
func (t Tool) Freehand() bool {
	return t == ToolBrush || t == ToolEraser
}

func (t Tool) String() string { return string(t) }
