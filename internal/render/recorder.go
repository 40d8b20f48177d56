package render

import "DriftBoard/internal/geom"

// OpKind names a recorded canvas call
type OpKind string

const (
	OpClear     OpKind = "clear"
	OpSave      OpKind = "save"
	OpRestore   OpKind = "restore"
	OpTranslate OpKind = "translate"
	OpStyle     OpKind = "style"
	OpStroke    OpKind = "stroke"
	OpFill      OpKind = "fill"
)

// Op is one recorded canvas call
type Op struct {
	Kind   OpKind
	Rect   geom.Rect
	Offset geom.Vec // accumulated translation at the time of the call
	Style  Style
	Path   geom.Path
}

// Recorder is a Canvas that remembers every call instead of drawing. Tests and
// tooling use it to inspect what a frame would paint.
type Recorder struct {
	Stack
	W, H float64
	Ops  []Op
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() geom.Size { return geom.Size{W: r.W, H: r.H} }

func (r *Recorder) ClearRect(rc geom.Rect) {
	r.record(Op{Kind: OpClear, Rect: rc})
}

func (r *Recorder) Save() {
	r.Stack.Save()
	r.record(Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	r.Stack.Restore()
	r.record(Op{Kind: OpRestore})
}

func (r *Recorder) Translate(d geom.Vec) {
	r.Stack.Translate(d)
	r.record(Op{Kind: OpTranslate})
}

func (r *Recorder) SetStyle(s Style) {
	r.Stack.SetStyle(s)
	r.record(Op{Kind: OpStyle})
}

func (r *Recorder) Stroke(p geom.Path) {
	r.record(Op{Kind: OpStroke, Path: p})
}

func (r *Recorder) Fill(p geom.Path) {
	r.record(Op{Kind: OpFill, Path: p})
}

func (r *Recorder) record(op Op) {
	op.Offset = r.Offset()
	op.Style = r.Current()
	r.Ops = append(r.Ops, op)
}

// Kinds returns the sequence of recorded call kinds
func (r *Recorder) Kinds() []OpKind {
	out := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Kind
	}
	return out
}

// Reset forgets recorded calls and the save stack
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Stack = Stack{}
}
