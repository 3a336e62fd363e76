package compare

import (
	"strconv"

	"naum/internal/common"
	"naum/internal/model"
	"naum/internal/report"
	"naum/modifier"
)

// Modifier bits reported under their own aspect, excluded from AspectModifiers.
const (
	memberAspectBits = modifier.VisibilityMask | modifier.Static | modifier.Final | modifier.Abstract
	typeAspectBits   = memberAspectBits | modifier.Interface | modifier.Annotation | modifier.Enum
)

// differ diffs one pair of types. It is shared by the comparison workers
// and only reads.
type differ struct {
	engine *Engine
	types  hierarchy
}

func (d *differ) diffType(b, c *model.TypeInfo) ([]report.Record, error) {
	bd, err := b.Digest()
	if err != nil {
		return nil, err
	}
	cd, err := c.Digest()
	if err != nil {
		return nil, err
	}

	vis := b.Modifiers().Visibility()
	if bd == cd {
		return []report.Record{{
			TypeName:   b.Name(),
			Kind:       report.Unchanged,
			Severity:   report.SeverityNone,
			Visibility: vis,
			Exported:   vis.Exported(),
		}}, nil
	}

	var records []report.Record
	if rec, ok := d.typeChanges(b, c); ok {
		records = append(records, rec)
	}

	members, err := d.memberChanges(b, c)
	if err != nil {
		return nil, err
	}
	records = append(records, members...)

	if len(records) == 0 {
		records = append(records, d.reordered(b))
	}

	return records, nil
}

func (d *differ) typeChanges(b, c *model.TypeInfo) (report.Record, bool) {
	bm, cm := b.Modifiers(), c.Modifiers()
	vis := bm.Visibility()
	ds := d.details(Fact{
		Kind:       report.Modified,
		MemberKind: report.MemberNone,
		Visibility: vis,
		Exported:   vis.Exported(),
	})

	kindChanged := b.Kind() != c.Kind()
	if kindChanged {
		ds.rule(report.AspectKind, b.Kind().String(), c.Kind().String())
	}
	ds.visibility(bm, cm)

	class := b.Kind() == model.KindClass && c.Kind() == model.KindClass
	ds.flag(report.AspectFinal, bm, cm, modifier.Final, class && vis != modifier.VisibilityPrivate)
	if !kindChanged {
		ds.flag(report.AspectAbstract, bm, cm, modifier.Abstract, class)
	}
	ds.otherModifiers(bm, cm, typeAspectBits, modifier.Modifiers.TypeString)

	if b.Superclass() != c.Superclass() {
		v := breakingBoth
		if b.Superclass() != "" && d.types.inherits(c.Superclass(), b.Superclass()) {
			v = compatible
		}
		ds.add(report.AspectSuperclass, v, b.Superclass(), c.Superclass())
	}

	for _, name := range common.Difference(b.Interfaces(), c.Interfaces()) {
		ds.rule(report.AspectInterfaceRemoved, name, "")
	}
	for _, name := range common.Difference(c.Interfaces(), b.Interfaces()) {
		ds.rule(report.AspectInterfaceAdded, "", name)
	}

	if b.TypeParameters() != c.TypeParameters() {
		ds.rule(report.AspectTypeParameters, b.TypeParameters(), c.TypeParameters())
	}
	if b.Version() != c.Version() {
		ds.add(report.AspectVersion, versionChange(b.Version(), c.Version()),
			strconv.Itoa(b.Version()), strconv.Itoa(c.Version()))
	}
	ds.annotations(b.Annotations(), c.Annotations())

	if len(ds.list) == 0 {
		return report.Record{}, false
	}

	return report.Record{
		TypeName:   b.Name(),
		Kind:       report.Modified,
		Severity:   maxSeverity(report.SeverityNone, ds.list),
		Visibility: vis,
		Exported:   vis.Exported(),
		Details:    ds.list,
	}, true
}

// reordered reports a type whose digest changed although every member and
// attribute matched: only declaration order differs.
func (d *differ) reordered(b *model.TypeInfo) report.Record {
	vis := b.Modifiers().Visibility()
	ds := d.details(Fact{Kind: report.MembersReordered, Visibility: vis, Exported: vis.Exported()})
	ds.rule(report.AspectOrder, "", "")
	ds.list[0].Note = "declaration order changed"

	return report.Record{
		TypeName:   b.Name(),
		Kind:       report.MembersReordered,
		Severity:   maxSeverity(d.engine.classify(ds.fact, wholeEntityRules[report.MembersReordered]), ds.list),
		Visibility: vis,
		Exported:   vis.Exported(),
		Details:    ds.list,
	}
}

// details accumulates the details of one record, classifying each through
// the policy with the record's fact.
type details struct {
	engine *Engine
	fact   Fact
	list   []report.Detail
}

func (d *differ) details(f Fact) *details {
	return &details{engine: d.engine, fact: f}
}

func (ds *details) add(aspect report.Aspect, v verdict, before, after string) {
	ds.addAnnotated(aspect, "", v, before, after)
}

func (ds *details) addAnnotated(aspect report.Aspect, annotation string, v verdict, before, after string) {
	f := ds.fact
	f.Aspect = aspect
	f.Annotation = annotation

	ds.list = append(ds.list, report.Detail{
		Aspect:   aspect,
		Before:   before,
		After:    after,
		Severity: ds.engine.classify(f, v),
		Breaks:   v.breaks,
	})
}

// rule adds a detail classified by the aspect rule table.
func (ds *details) rule(aspect report.Aspect, before, after string) {
	ds.add(aspect, aspectRules[aspect], before, after)
}

func (ds *details) visibility(bm, cm modifier.Modifiers) {
	bv, cv := bm.Visibility(), cm.Visibility()
	if bv != cv {
		ds.add(report.AspectVisibility, visibilityChange(bv, cv), bv.String(), cv.String())
	}
}

func (ds *details) static(bm, cm modifier.Modifiers) {
	if bm.Has(modifier.Static) != cm.Has(modifier.Static) {
		ds.rule(report.AspectStatic, onOff(bm, modifier.Static), onOff(cm, modifier.Static))
	}
}

// flag reports gaining or losing final/abstract. extendable says whether
// gaining it breaks subclasses or overriders.
func (ds *details) flag(aspect report.Aspect, bm, cm, flag modifier.Modifiers, extendable bool) {
	had, has := bm.Has(flag), cm.Has(flag)
	if had == has {
		return
	}
	ds.add(aspect, flagAdded(has, extendable), onOff(bm, flag), onOff(cm, flag))
}

func (ds *details) otherModifiers(bm, cm, reported modifier.Modifiers, render func(modifier.Modifiers) string) {
	br, cr := bm.Without(reported), cm.Without(reported)
	if br != cr {
		ds.rule(report.AspectModifiers, render(br), render(cr))
	}
}

func (ds *details) annotations(before, after []*model.AnnotationInfo) {
	for _, b := range before {
		c := findAnnotation(after, b.Name())
		switch {
		case c == nil:
			ds.addAnnotated(report.AspectAnnotationRemoved, b.Name(),
				aspectRules[report.AspectAnnotationRemoved], b.Name(), "")
		case !b.Equal(c):
			ds.addAnnotated(report.AspectAnnotationChanged, b.Name(),
				aspectRules[report.AspectAnnotationChanged], b.Name(), "")
			ds.list[len(ds.list)-1].Note = "element values differ"
		}
	}
	for _, c := range after {
		if findAnnotation(before, c.Name()) == nil {
			ds.addAnnotated(report.AspectAnnotationAdded, c.Name(),
				aspectRules[report.AspectAnnotationAdded], "", c.Name())
		}
	}
}

func findAnnotation(list []*model.AnnotationInfo, name string) *model.AnnotationInfo {
	for _, a := range list {
		if a.Name() == name {
			return a
		}
	}

	return nil
}

// onOff renders a single flag for a detail.
func onOff(m, flag modifier.Modifiers) string {
	if m.Has(flag) {
		return flag.String()
	}

	return "non-" + flag.String()
}
