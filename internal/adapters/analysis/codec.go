// Package analysis persists class set analysis data in its binary wire format.
package analysis

import (
	"errors"
	"io"
	"math"

	"go.trai.ch/recomp/internal/adapters/serialize"
	"go.trai.ch/recomp/internal/core/domain"
)

const (
	tagDependencyToAll byte = 1
	tagExactDependents byte = 2
)

// Encode writes a in four sections: dependents, constants, children and the full rebuild
// cause. Class names are interned across all sections. Map entries are written in class
// name order, so encoding equal values yields identical bytes.
func Encode(w io.Writer, a *domain.ClassSetAnalysisData) error {
	enc := &encoder{
		enc: serialize.NewEncoder(w),
		ids: make(map[string]int),
	}
	if err := enc.analysis(a); err != nil {
		return errors.Join(domain.ErrAnalysisEncodeFailed, err)
	}
	return nil
}

// Decode reads analysis data written by Encode. Trailing bytes after the last section are
// rejected.
func Decode(r io.Reader) (*domain.ClassSetAnalysisData, error) {
	dec := &decoder{dec: serialize.NewDecoder(r)}
	a, err := dec.analysis()
	if err != nil {
		return nil, errors.Join(domain.ErrAnalysisDecodeFailed, err)
	}
	return a, nil
}

type encoder struct {
	enc *serialize.Encoder
	ids map[string]int
}

func (e *encoder) analysis(a *domain.ClassSetAnalysisData) error {
	_ = e.enc.WriteSmallInt(a.DependentsLen())
	for name, set := range a.DependentsEntries() {
		e.className(name)
		e.dependents(set)
	}

	_ = e.enc.WriteSmallInt(a.ConstantsLen())
	for name, ids := range a.ConstantsEntries() {
		e.className(name)
		_ = e.enc.WriteSmallInt(ids.Len())
		for _, id := range ids.Values() {
			_ = e.enc.WriteVarint(int64(id))
		}
	}

	_ = e.enc.WriteSmallInt(a.ChildrenLen())
	for parent, children := range a.ChildrenEntries() {
		e.className(parent)
		_ = e.enc.WriteSmallInt(len(children))
		for _, child := range children {
			e.className(child)
		}
	}

	_ = e.enc.WriteNullableString(a.FullRebuildCause())

	// The encoder keeps the first error; Flush reports it.
	return e.enc.Flush()
}

func (e *encoder) dependents(set domain.DependentsSet) {
	switch s := set.(type) {
	case domain.DependencyToAll:
		_ = e.enc.WriteByte(tagDependencyToAll)
		_ = e.enc.WriteNullableString(s.Cause())
	case domain.ExactDependents:
		_ = e.enc.WriteByte(tagExactDependents)
		_ = e.enc.WriteSmallInt(s.Len())
		for _, name := range s.Classes() {
			e.className(name)
		}
	}
}

// className writes a reference to an already defined name, or defines it as
// 0, id, name with the next sequential id.
func (e *encoder) className(name string) {
	if id, ok := e.ids[name]; ok {
		_ = e.enc.WriteSmallInt(id)
		return
	}
	id := len(e.ids) + 1
	e.ids[name] = id
	_ = e.enc.WriteSmallInt(0)
	_ = e.enc.WriteSmallInt(id)
	_ = e.enc.WriteString(name)
}

type decoder struct {
	dec   *serialize.Decoder
	names []string // names[id-1]
}

func (d *decoder) analysis() (*domain.ClassSetAnalysisData, error) {
	b := domain.NewAnalysisBuilder()

	seen := make(map[string]struct{})
	count, err := d.dec.ReadSmallInt()
	if err != nil {
		return nil, err
	}
	for range count {
		name, err := d.key(seen)
		if err != nil {
			return nil, err
		}
		set, err := d.dependents()
		if err != nil {
			return nil, err
		}
		b.SetDependents(name, set)
	}

	clear(seen)
	if count, err = d.dec.ReadSmallInt(); err != nil {
		return nil, err
	}
	for range count {
		name, err := d.key(seen)
		if err != nil {
			return nil, err
		}
		ids, err := d.intSet()
		if err != nil {
			return nil, err
		}
		b.SetConstants(name, ids)
	}

	clear(seen)
	if count, err = d.dec.ReadSmallInt(); err != nil {
		return nil, err
	}
	for range count {
		parent, err := d.key(seen)
		if err != nil {
			return nil, err
		}
		children, err := d.classNames()
		if err != nil {
			return nil, err
		}
		b.AddChildren(parent, children...)
	}

	cause, ok, err := d.dec.ReadNullableString()
	if err != nil {
		return nil, err
	}
	if ok {
		b.SetFullRebuildCause(cause)
	}

	if !d.dec.AtEOF() {
		return nil, domain.ErrTrailingData
	}
	return b.Build(), nil
}

// key reads a class name that keys a section entry. Each name keys at most one entry.
func (d *decoder) key(seen map[string]struct{}) (string, error) {
	name, err := d.className()
	if err != nil {
		return "", err
	}
	if _, dup := seen[name]; dup {
		return "", domain.ErrDuplicateClassName
	}
	seen[name] = struct{}{}
	return name, nil
}

func (d *decoder) dependents() (domain.DependentsSet, error) {
	tag, err := d.dec.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagDependencyToAll:
		cause, ok, err := d.dec.ReadNullableString()
		if err != nil {
			return nil, err
		}
		if !ok {
			return domain.DependentsToAllWithoutCause(), nil
		}
		return domain.DependentsToAll(cause), nil
	case tagExactDependents:
		names, err := d.classNames()
		if err != nil {
			return nil, err
		}
		return domain.NewExactDependents(names...), nil
	default:
		return nil, domain.ErrUnknownDependentsTag
	}
}

func (d *decoder) classNames() ([]string, error) {
	count, err := d.dec.ReadSmallInt()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, min(count, 1024))
	for range count {
		name, err := d.className()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (d *decoder) intSet() (domain.IntSet, error) {
	count, err := d.dec.ReadSmallInt()
	if err != nil {
		return domain.IntSet{}, err
	}
	ids := make([]int32, 0, min(count, 1024))
	for range count {
		v, err := d.dec.ReadVarint()
		if err != nil {
			return domain.IntSet{}, err
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return domain.IntSet{}, domain.ErrVarintOverflow
		}
		ids = append(ids, int32(v))
	}
	return domain.NewIntSet(ids...), nil
}

func (d *decoder) className() (string, error) {
	id, err := d.dec.ReadSmallInt()
	if err != nil {
		return "", err
	}
	if id != 0 {
		if id > len(d.names) {
			return "", domain.ErrUnknownClassNameID
		}
		return d.names[id-1], nil
	}

	if id, err = d.dec.ReadSmallInt(); err != nil {
		return "", err
	}
	if id != len(d.names)+1 {
		return "", domain.ErrUnexpectedClassNameID
	}
	name, err := d.dec.ReadString()
	if err != nil {
		return "", err
	}
	d.names = append(d.names, name)
	return name, nil
}
