package tween

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/matt-g-everett/keyframe/internal/num"
)

// ErrNotTweenable is the panic value cause when Derive is asked for a type it cannot blend.
var ErrNotTweenable = errors.New("tween: type is not tweenable")

type blender func(from, to, out reflect.Value, t float64)

// Derive builds a Func for an aggregate type by blending every part of it with the same t:
// struct fields, array and slice elements, floats and integers. Parts that implement
// Tweener for their own type use their Tween method.
//
// Every struct field must be exported. Derive panics if V holds anything it cannot blend,
// such as strings, pointers or maps. Blending two values whose slices differ in length
// panics as well.
func Derive[V any]() Func[V] {
	typ := reflect.TypeOf((*V)(nil)).Elem()

	p := &planner{seen: make(map[reflect.Type]*blender)}
	b, err := p.plan(typ)
	if err != nil {
		panic(err)
	}

	return func(from, to V, t float64) V {
		var out V
		b(reflect.ValueOf(&from).Elem(), reflect.ValueOf(&to).Elem(), reflect.ValueOf(&out).Elem(), t)

		return out
	}
}

type planner struct {
	seen map[reflect.Type]*blender
}

func (p *planner) plan(typ reflect.Type) (blender, error) {
	if b, ok := p.seen[typ]; ok {
		// recursive type, resolved once planning of typ completes
		return func(from, to, out reflect.Value, t float64) {
			(*b)(from, to, out, t)
		}, nil
	}

	slot := new(blender)
	p.seen[typ] = slot

	b, err := p.build(typ)
	if err != nil {
		return nil, err
	}

	*slot = b

	return b, nil
}

func (p *planner) build(typ reflect.Type) (blender, error) {
	if b, ok := tweenMethod(typ); ok {
		return b, nil
	}

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		narrow := typ.Kind() == reflect.Float32

		return func(from, to, out reflect.Value, t float64) {
			a, b := from.Float(), to.Float()
			v := a + (b-a)*t
			if narrow {
				v = float64(num.FromF64[float32](v))
			}
			out.SetFloat(v)
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo, hi := signedBounds(typ.Bits())

		return func(from, to, out reflect.Value, t float64) {
			a, b := float64(from.Int()), float64(to.Int())
			out.SetInt(num.Clamp(num.ToInt[int64](a+(b-a)*t), lo, hi))
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		hi := unsignedBound(typ.Bits())

		return func(from, to, out reflect.Value, t float64) {
			a, b := float64(from.Uint()), float64(to.Uint())
			out.SetUint(num.Clamp(num.ToInt[uint64](a+(b-a)*t), 0, hi))
		}, nil
	case reflect.Array:
		elem, err := p.plan(typ.Elem())
		if err != nil {
			return nil, err
		}

		return func(from, to, out reflect.Value, t float64) {
			for i := 0; i < from.Len(); i++ {
				elem(from.Index(i), to.Index(i), out.Index(i), t)
			}
		}, nil
	case reflect.Slice:
		elem, err := p.plan(typ.Elem())
		if err != nil {
			return nil, err
		}

		return func(from, to, out reflect.Value, t float64) {
			if from.Len() != to.Len() {
				panic(fmt.Errorf("%w: %s %d != %d", ErrLengthMismatch, typ, from.Len(), to.Len()))
			}

			if from.IsNil() && to.IsNil() {
				return
			}

			out.Set(reflect.MakeSlice(typ, from.Len(), from.Len()))
			for i := 0; i < from.Len(); i++ {
				elem(from.Index(i), to.Index(i), out.Index(i), t)
			}
		}, nil
	case reflect.Struct:
		fields := make([]blender, typ.NumField())
		for i := range fields {
			f := typ.Field(i)
			if !f.IsExported() {
				return nil, fmt.Errorf("%w: %s has unexported field %s", ErrNotTweenable, typ, f.Name)
			}

			b, err := p.plan(f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = b
		}

		return func(from, to, out reflect.Value, t float64) {
			for i, b := range fields {
				b(from.Field(i), to.Field(i), out.Field(i), t)
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotTweenable, typ)
	}
}

// tweenMethod uses typ's own Tween(to T, t float64) T method when it has one.
func tweenMethod(typ reflect.Type) (blender, bool) {
	m, ok := typ.MethodByName("Tween")
	if !ok {
		return nil, false
	}

	mt := m.Type
	if mt.NumIn() != 3 || mt.NumOut() != 1 || mt.In(1) != typ || mt.Out(0) != typ ||
		mt.In(2).Kind() != reflect.Float64 {
		return nil, false
	}

	progress := mt.In(2)

	return func(from, to, out reflect.Value, t float64) {
		res := from.Method(m.Index).Call([]reflect.Value{to, reflect.ValueOf(t).Convert(progress)})
		out.Set(res[0])
	}, true
}

func signedBounds(bits int) (int64, int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}

	return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
}

func unsignedBound(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}

	return uint64(1)<<bits - 1
}
