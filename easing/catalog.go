package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
)

var (
	ErrUnknownCurve = errors.New("unknown curve")
	ErrBadCurve     = errors.New("bad curve")
)

const bezierPrefix = "cubic-bezier("

// Catalog resolves curves by name. Curves built by Parse are kept, so every keyframe that
// names the same curve shares one instance.
type Catalog struct {
	curves *cache.Cache
}

// NewCatalog returns a catalog holding the static curves, plus "ease" as the CSS default
// cubic-bezier(0.25, 0.1, 0.25, 1).
func NewCatalog() *Catalog {
	c := &Catalog{
		curves: cache.New(cache.NoExpiration, 0),
	}

	for name, f := range staticCurves() {
		c.Register(name, f)
	}
	c.Register("ease", NewBezier(0.25, 0.1, 0.25, 1))

	return c
}

// Register adds or replaces a named curve.
func (c *Catalog) Register(name string, f Function) {
	c.curves.Set(normalizeName(name), f, cache.NoExpiration)
}

// Lookup returns the curve registered under name.
func (c *Catalog) Lookup(name string) (Function, bool) {
	v, ok := c.curves.Get(normalizeName(name))
	if !ok {
		return nil, false
	}

	f, ok := v.(Function)

	return f, ok
}

// Names returns the registered names in order.
func (c *Catalog) Names() []string {
	items := c.curves.Items()

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Parse resolves a curve name or a "cubic-bezier(x1, y1, x2, y2)" expression. An empty
// expr resolves to Default.
func (c *Catalog) Parse(expr string) (Function, error) {
	name := normalizeName(expr)
	if name == "" {
		return Default, nil
	}

	if f, ok := c.Lookup(name); ok {
		return f, nil
	}

	if !strings.HasPrefix(name, bezierPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, expr)
	}

	if !strings.HasSuffix(name, ")") {
		return nil, fmt.Errorf("%w: %q is missing ')'", ErrBadCurve, expr)
	}

	args := strings.Split(strings.TrimSuffix(strings.TrimPrefix(name, bezierPrefix), ")"), ",")
	if len(args) != 4 {
		return nil, fmt.Errorf("%w: %q needs 4 coordinates", ErrBadCurve, expr)
	}

	var p [4]float64
	for i, arg := range args {
		v, err := cast.ToFloat64E(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadCurve, expr, err)
		}
		p[i] = v
	}

	b := NewBezier(p[0], p[1], p[2], p[3])
	c.Register(name, b)

	return b, nil
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	return strings.Join(strings.Fields(name), "")
}
