package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/lpeeterscsiro/ttim/inp"
)

// AllocatorType builds an Element from a loosely-typed parameter bag, a map of
// named values built in Go; no configuration file is read (§6 "Configuration
// surface"). Adapted from a (sim, cell, edat, x) finite-element style
// allocator signature to this package's (aquifer, params) one.
type AllocatorType func(aq *inp.Aquifer, params map[string]interface{}) (Element, error)

// allocators holds every registered element-kind builder.
var allocators = make(map[string]AllocatorType)

// SetAllocator registers fcn under kind; panics if kind is already taken
// (§9, following gofem's ele/factory.go exactly: a duplicate registration is a
// programmer error, not a runtime condition to recover from).
func SetAllocator(kind string, fcn AllocatorType) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot set allocator for %q because it exists already", kind)
	}
	allocators[kind] = fcn
}

// GetAllocator returns the builder registered for kind; panics if absent.
func GetAllocator(kind string) AllocatorType {
	if fcn, ok := allocators[kind]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator for element kind %q", kind)
	return nil
}

// New builds an element of the given kind from params.
func New(kind string, aq *inp.Aquifer, params map[string]interface{}) (Element, error) {
	return GetAllocator(kind)(aq, params)
}

func init() {
	SetAllocator("well", allocWell)
	SetAllocator("linesink", allocLineSink)
	SetAllocator("onedstrip", allocOneDStrip)
	SetAllocator("linesinkditch", allocLineSinkDitch)
}

func allocWell(aq *inp.Aquifer, p map[string]interface{}) (Element, error) {
	x, err := paramFloat(p, "x")
	if err != nil {
		return nil, err
	}
	y, err := paramFloat(p, "y")
	if err != nil {
		return nil, err
	}
	rw, err := paramFloat(p, "rw")
	if err != nil {
		return nil, err
	}
	layers, err := paramInts(p, "layers")
	if err != nil {
		return nil, err
	}
	eq, err := paramEquationKind(p, "eq", HeadEq)
	if err != nil {
		return nil, err
	}
	flow, err := paramFlowKind(p, "flow")
	if err != nil {
		return nil, err
	}
	w := &Well{Base: Base{Aq: aq}, X: x, Y: y, Rw: rw, Layers: layers, Eq: eq, Flow: flow}
	if eq == HeadEq || eq == ResistanceEq {
		w.Hc, _ = paramFloat(p, "hc")
		w.Res = paramFloatSliceOrNil(p, "res")
	} else {
		w.Qtot, _ = paramFloat(p, "qtot")
		w.Res = paramFloatSliceOrNil(p, "res")
		w.Rc, _ = paramFloat(p, "rc")
	}
	if q, ok := p["q"]; ok {
		qs, err := toFloatSlice(q)
		if err != nil {
			return nil, err
		}
		w.Q = qs
	}
	return w, nil
}

func allocLineSink(aq *inp.Aquifer, p map[string]interface{}) (Element, error) {
	z1, err := paramComplex(p, "z1")
	if err != nil {
		return nil, err
	}
	z2, err := paramComplex(p, "z2")
	if err != nil {
		return nil, err
	}
	layer, err := paramInt(p, "layer")
	if err != nil {
		return nil, err
	}
	eq, err := paramEquationKind(p, "eq", HeadEq)
	if err != nil {
		return nil, err
	}
	flow, err := paramFlowKind(p, "flow")
	if err != nil {
		return nil, err
	}
	l := &LineSink{Base: Base{Aq: aq}, Z1: z1, Z2: z2, Layer: layer, Eq: eq, Flow: flow}
	l.Hc, _ = paramFloat(p, "hc")
	l.Res, _ = paramFloat(p, "res")
	l.Q, _ = paramFloat(p, "q")
	return l, nil
}

func allocOneDStrip(aq *inp.Aquifer, p map[string]interface{}) (Element, error) {
	l, err := paramFloat(p, "l")
	if err != nil {
		return nil, err
	}
	layer, err := paramInt(p, "layer")
	if err != nil {
		return nil, err
	}
	infinite, _ := p["infinite"].(bool)
	eq, err := paramEquationKind(p, "eq", HeadEq)
	if err != nil {
		return nil, err
	}
	o := &OneDStrip{Base: Base{Aq: aq}, L: l, Infinite: infinite, Layer: layer, Eq: eq}
	o.Hc, _ = paramFloat(p, "hc")
	o.Qx, _ = paramFloat(p, "qx")
	return o, nil
}

func allocLineSinkDitch(aq *inp.Aquifer, p map[string]interface{}) (Element, error) {
	points, err := paramComplexSlice(p, "points")
	if err != nil {
		return nil, err
	}
	layer, err := paramInt(p, "layer")
	if err != nil {
		return nil, err
	}
	qtot, err := paramFloat(p, "qtot")
	if err != nil {
		return nil, err
	}
	res := paramFloatSliceOrNil(p, "res")
	return NewLineSinkDitch(aq, points, layer, qtot, res), nil
}

func paramFlowKind(p map[string]interface{}, key string) (FlowKind, error) {
	v, ok := p[key]
	if !ok {
		return Step, nil
	}
	s, ok := v.(string)
	if !ok {
		return Step, chk.Err("parameter %q must be a string", key)
	}
	switch s {
	case "step", "":
		return Step, nil
	case "slug":
		return Slug, nil
	}
	return Step, chk.Err("unknown flow kind %q", s)
}

func paramEquationKind(p map[string]interface{}, key string, dflt EquationKind) (EquationKind, error) {
	v, ok := p[key]
	if !ok {
		return dflt, nil
	}
	s, ok := v.(string)
	if !ok {
		return dflt, chk.Err("parameter %q must be a string", key)
	}
	switch s {
	case "head":
		return HeadEq, nil
	case "resistance":
		return ResistanceEq, nil
	case "mscreen":
		return MscreenEq, nil
	case "mscreenres":
		return MscreenResEq, nil
	case "internalstorage":
		return InternalStorageEq, nil
	case "internalstorageslug":
		return InternalStorageSlugEq, nil
	case "hconn":
		return HconnEq, nil
	}
	return dflt, chk.Err("unknown equation kind %q", s)
}

func paramFloat(p map[string]interface{}, key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, chk.Err("missing required parameter %q", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, chk.Err("parameter %q must be a float64", key)
	}
	return f, nil
}

func paramInt(p map[string]interface{}, key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, chk.Err("missing required parameter %q", key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, chk.Err("parameter %q must be an int", key)
}

func paramComplex(p map[string]interface{}, key string) (complex128, error) {
	v, ok := p[key]
	if !ok {
		return 0, chk.Err("missing required parameter %q", key)
	}
	c, ok := v.(complex128)
	if !ok {
		return 0, chk.Err("parameter %q must be a complex128", key)
	}
	return c, nil
}

func paramInts(p map[string]interface{}, key string) ([]int, error) {
	v, ok := p[key]
	if !ok {
		return nil, chk.Err("missing required parameter %q", key)
	}
	switch s := v.(type) {
	case []int:
		return s, nil
	case []float64:
		out := make([]int, len(s))
		for i, f := range s {
			out[i] = int(f)
		}
		return out, nil
	}
	return nil, chk.Err("parameter %q must be a slice of int", key)
}

func paramComplexSlice(p map[string]interface{}, key string) ([]complex128, error) {
	v, ok := p[key]
	if !ok {
		return nil, chk.Err("missing required parameter %q", key)
	}
	c, ok := v.([]complex128)
	if !ok {
		return nil, chk.Err("parameter %q must be a slice of complex128", key)
	}
	return c, nil
}

func toFloatSlice(v interface{}) ([]float64, error) {
	f, ok := v.([]float64)
	if !ok {
		return nil, chk.Err("expected a slice of float64")
	}
	return f, nil
}

func paramFloatSliceOrNil(p map[string]interface{}, key string) []float64 {
	v, ok := p[key]
	if !ok {
		return nil
	}
	f, _ := v.([]float64)
	return f
}
