package model

import (
	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/value"
)

// axis resolves the values and optional errors of one axis of a series.
func (b *builder) axis(series value.Value, name, loc string) ([]float64, []float64, error) {
	at := field(loc, name)
	v, ok := series.Get(name)
	if !ok {
		return nil, nil, invalid(loc, "missing %q", name)
	}

	if v.Kind() != value.KindMap {
		vals, err := b.data(v, at)
		return vals, nil, err
	}

	vv, ok := v.Get(keyValues)
	if !ok {
		return nil, nil, invalid(at, "missing %q", keyValues)
	}
	vals, err := b.data(vv, field(at, keyValues))
	if err != nil {
		return nil, nil, err
	}

	ev, ok := v.Get(keyErrors)
	if !ok || ev.IsNull() {
		return vals, nil, nil
	}
	errs, err := b.errs(ev, vals, field(at, keyErrors))
	if err != nil {
		return nil, nil, err
	}
	return vals, errs, nil
}

// errs resolves an errors value: a literal list, a file reference, or a
// scalar multiplier applied to each value.
func (b *builder) errs(v value.Value, vals []float64, loc string) ([]float64, error) {
	if f, ok := v.AsNumber(); ok {
		out := make([]float64, len(vals))
		for i, x := range vals {
			out[i] = x * f
		}
		return out, nil
	}

	errs, err := b.data(v, loc)
	if err != nil {
		return nil, err
	}
	if len(errs) != len(vals) {
		return nil, invalid(loc, "%d errors for %d values", len(errs), len(vals))
	}
	return errs, nil
}

// data resolves a literal number list or a file reference.
func (b *builder) data(v value.Value, loc string) ([]float64, error) {
	switch v.Kind() {
	case value.KindList:
		nums, ok := v.AsNumbers()
		if !ok {
			return nil, invalid(loc, "list contains non-numeric values")
		}
		return nums, nil
	case value.KindString:
		s, _ := v.AsString()
		nums, err := b.reader.ColumnString(s)
		if err != nil {
			if errors.Is(err, errors.ErrCodeInvalidAxisSpec) {
				return nil, invalid(loc, "%s", errors.UserMessage(err))
			}
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidInput
			}
			return nil, errors.Wrap(code, err, "%s", loc)
		}
		return nums, nil
	default:
		return nil, invalid(loc, "want a list of numbers or a file reference, got %s", v.Kind())
	}
}
