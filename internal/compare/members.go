package compare

import (
	"fmt"
	"slices"
	"strconv"

	"naum/internal/match"
	"naum/internal/model"
	"naum/internal/report"
	"naum/modifier"
)

// memberView is what every member kind shares.
type memberView interface {
	Name() string
	Modifiers() modifier.Modifiers
	Annotations() []*model.AnnotationInfo
	Content() (string, error)
}

// entry is a member keyed for matching. The key doubles as the record's
// Member: the field or inner class name, or the method or constructor
// signature.
type entry struct {
	key string
	// alt replaces key when the key is ambiguous on either side
	// (bridge methods differing only by return type).
	alt string
	m   memberView
}

func (d *differ) memberChanges(b, c *model.TypeInfo) ([]report.Record, error) {
	var records []report.Record

	groups := []struct {
		kind report.MemberKind
		b, c []entry
	}{
		{report.MemberField, fieldEntries(b), fieldEntries(c)},
		{report.MemberMethod, methodEntries(b), methodEntries(c)},
		{report.MemberConstructor, constructorEntries(b), constructorEntries(c)},
		{report.MemberInnerClass, innerEntries(b), innerEntries(c)},
	}

	for _, g := range groups {
		recs, err := d.diffMembers(g.kind, b, c, g.b, g.c)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	return records, nil
}

// pending is an unmatched member waiting for rename pairing.
type pending struct {
	entry  entry
	shape  string
	record int
}

func (d *differ) diffMembers(kind report.MemberKind, bt, ct *model.TypeInfo, base, cand []entry) ([]report.Record, error) {
	disambiguate(base, cand)

	byKey := make(map[string]entry, len(cand))
	for _, e := range cand {
		byKey[e.key] = e
	}
	matched := make(map[string]bool, len(base))

	var (
		records     []report.Record
		gone, fresh []pending
	)

	for _, be := range base {
		ce, ok := byKey[be.key]
		if !ok {
			shape, err := shapeOf(be.m)
			if err != nil {
				return nil, err
			}
			gone = append(gone, pending{entry: be, shape: shape, record: len(records)})
			records = append(records, d.removedMember(kind, bt, be))
			continue
		}
		matched[be.key] = true

		rec, changed, err := d.modifiedMember(kind, bt, ct, be, ce)
		if err != nil {
			return nil, err
		}
		if changed {
			records = append(records, rec)
		}
	}

	for _, ce := range cand {
		if matched[ce.key] {
			continue
		}
		shape, err := shapeOf(ce.m)
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, pending{entry: ce, shape: shape, record: len(records)})
		records = append(records, d.addedMember(kind, ct, ce))
	}

	if d.engine.config.RenameHints && kind != report.MemberConstructor {
		d.hintRenames(records, gone, fresh)
	}

	return records, nil
}

func (d *differ) removedMember(kind report.MemberKind, t *model.TypeInfo, e entry) report.Record {
	f := memberFact(report.MemberRemoved, kind, t, e.m)
	v := removal(report.MemberRemoved, f.Exported)

	return report.Record{
		TypeName:     t.Name(),
		Member:       e.key,
		MemberKind:   kind,
		Kind:         report.MemberRemoved,
		Severity:     d.engine.classify(f, v),
		Visibility:   f.Visibility,
		Exported:     f.Exported,
		EntityBreaks: v.breaks,
	}
}

func (d *differ) addedMember(kind report.MemberKind, t *model.TypeInfo, e entry) report.Record {
	change := report.MemberAdded
	if m, ok := e.m.(*model.MethodInfo); ok && abstractIn(t, m) {
		change = report.AddedAbstractMember
	}
	f := memberFact(change, kind, t, e.m)
	v := wholeEntityRules[change]

	return report.Record{
		TypeName:     t.Name(),
		Member:       e.key,
		MemberKind:   kind,
		Kind:         change,
		Severity:     d.engine.classify(f, v),
		Visibility:   f.Visibility,
		Exported:     f.Exported,
		EntityBreaks: v.breaks,
	}
}

// abstractIn reports whether implementers of t must now provide m.
// Default and static interface methods carry a body and no ACC_ABSTRACT.
func abstractIn(t *model.TypeInfo, m *model.MethodInfo) bool {
	return t.IsAbstract() && m.IsAbstract()
}

func (d *differ) modifiedMember(kind report.MemberKind, bt, ct *model.TypeInfo, be, ce entry) (report.Record, bool, error) {
	bc, err := be.m.Content()
	if err != nil {
		return report.Record{}, false, err
	}
	cc, err := ce.m.Content()
	if err != nil {
		return report.Record{}, false, err
	}
	if bc == cc {
		return report.Record{}, false, nil
	}

	f := memberFact(report.Modified, kind, bt, be.m)
	ds := d.details(f)
	bm, cm := be.m.Modifiers(), ce.m.Modifiers()

	ds.visibility(bm, cm)
	ds.static(bm, cm)

	switch b := be.m.(type) {
	case *model.FieldInfo:
		c := ce.m.(*model.FieldInfo)
		ds.flag(report.AspectFinal, bm, cm, modifier.Final, true)
		if b.Type() != c.Type() {
			ds.rule(report.AspectType, b.Type(), c.Type())
		}
	case *model.MethodInfo:
		c := ce.m.(*model.MethodInfo)
		overridable := !bm.Any(modifier.Private|modifier.Static) && !ct.Modifiers().Has(modifier.Final)
		ds.flag(report.AspectFinal, bm, cm, modifier.Final, overridable)
		ds.flag(report.AspectAbstract, bm, cm, modifier.Abstract, true)
		if b.ReturnType() != c.ReturnType() {
			ds.rule(report.AspectReturnType, b.ReturnType(), c.ReturnType())
		}
		if b.TypeParameters() != c.TypeParameters() {
			ds.rule(report.AspectTypeParameters, b.TypeParameters(), c.TypeParameters())
		}
		d.exceptions(ds, b.Exceptions(), c.Exceptions())
	case *model.ConstructorInfo:
		c := ce.m.(*model.ConstructorInfo)
		d.exceptions(ds, b.Exceptions(), c.Exceptions())
	case *model.InnerClassRef:
		inheritable := !bm.Any(modifier.Private | modifier.Interface)
		ds.flag(report.AspectFinal, bm, cm, modifier.Final, inheritable)
		ds.flag(report.AspectAbstract, bm, cm, modifier.Abstract, !bm.Has(modifier.Interface))
	default:
		return report.Record{}, false, &model.UnknownEntityKind{Kind: fmt.Sprintf("member %T", be.m)}
	}

	ds.otherModifiers(bm, cm, memberAspectBits, modifier.Modifiers.String)
	ds.annotations(be.m.Annotations(), ce.m.Annotations())
	if len(ds.list) == 0 {
		// Only the annotation order differs.
		ds.rule(report.AspectOrder, "", "")
		ds.list[0].Note = "declaration order changed"
	}

	return report.Record{
		TypeName:   bt.Name(),
		Member:     be.key,
		MemberKind: kind,
		Kind:       report.Modified,
		Severity:   maxSeverity(report.SeverityNone, ds.list),
		Visibility: f.Visibility,
		Exported:   f.Exported,
		Details:    ds.list,
	}, true, nil
}

func (d *differ) exceptions(ds *details, before, after []string) {
	for _, name := range missingFrom(before, after) {
		ds.rule(report.AspectExceptionRemoved, name, "")
	}
	for _, name := range missingFrom(after, before) {
		v := exceptionAdded(d.types.isChecked(name))
		ds.add(report.AspectExceptionAdded, v, "", name)
		if v.severity == report.SeverityNonBreaking {
			ds.list[len(ds.list)-1].Note = "unchecked"
		}
	}
}

// missingFrom returns the distinct names of a missing from b.
func missingFrom(a, b []string) []string {
	var out []string
	for _, name := range a {
		if !slices.Contains(b, name) && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	return out
}

// hintRenames attaches rename details to removed/added records whose
// members have the same shape and similar names.
func (d *differ) hintRenames(records []report.Record, gone, fresh []pending) {
	if len(gone) == 0 || len(fresh) == 0 {
		return
	}

	removed := make([]match.Member, len(gone))
	for i, p := range gone {
		removed[i] = match.Member{Name: p.entry.m.Name(), Shape: p.shape}
	}
	added := make([]match.Member, len(fresh))
	for i, p := range fresh {
		added[i] = match.Member{Name: p.entry.m.Name(), Shape: p.shape}
	}

	cfg := d.engine.config
	for _, pair := range match.PairRenames(removed, added, cfg.MinRenameScore, cfg.MinRenameGap) {
		from := findPending(gone, pair.Removed)
		to := findPending(fresh, pair.Added)
		if from == nil || to == nil {
			continue
		}
		note := "score " + strconv.FormatFloat(pair.Score, 'f', 2, 64)

		d.renameDetail(&records[from.record], report.Detail{After: to.entry.key, Note: note})
		d.renameDetail(&records[to.record], report.Detail{Before: from.entry.key, Note: note})
	}
}

func (d *differ) renameDetail(rec *report.Record, detail report.Detail) {
	v := aspectRules[report.AspectRename]
	f := Fact{
		Kind:       rec.Kind,
		Aspect:     report.AspectRename,
		MemberKind: rec.MemberKind,
		Visibility: rec.Visibility,
		Exported:   rec.Exported,
	}
	detail.Aspect = report.AspectRename
	detail.Severity = d.engine.classify(f, v)
	detail.Breaks = v.breaks

	rec.Details = append(rec.Details, detail)
	rec.Severity = maxSeverity(rec.Severity, rec.Details)
}

func findPending(list []pending, m match.Member) *pending {
	for i := range list {
		if list[i].entry.m.Name() == m.Name && list[i].shape == m.Shape {
			return &list[i]
		}
	}

	return nil
}

// memberFact describes a member of t. A member is exported only when its
// declaring type is.
func memberFact(change report.ChangeKind, kind report.MemberKind, t *model.TypeInfo, m memberView) Fact {
	vis := m.Modifiers().Visibility()

	return Fact{
		Kind:       change,
		MemberKind: kind,
		Visibility: vis,
		Exported:   vis.Exported() && t.Modifiers().Visibility().Exported(),
	}
}

func shapeOf(m memberView) (string, error) {
	d, err := model.DigestEntity(m)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

func fieldEntries(t *model.TypeInfo) []entry {
	out := make([]entry, len(t.Fields()))
	for i, f := range t.Fields() {
		out[i] = entry{key: f.Name(), m: f}
	}

	return out
}

func methodEntries(t *model.TypeInfo) []entry {
	out := make([]entry, len(t.Methods()))
	for i, m := range t.Methods() {
		out[i] = entry{key: m.Signature(), alt: m.Signature() + ":" + m.ReturnType(), m: m}
	}

	return out
}

func constructorEntries(t *model.TypeInfo) []entry {
	out := make([]entry, len(t.Constructors()))
	for i, c := range t.Constructors() {
		out[i] = entry{key: c.Signature(), m: c}
	}

	return out
}

func innerEntries(t *model.TypeInfo) []entry {
	out := make([]entry, len(t.InnerClasses()))
	for i, r := range t.InnerClasses() {
		out[i] = entry{key: r.Name(), m: r}
	}

	return out
}

// disambiguate rewrites keys that repeat on either side to their alt form,
// then numbers whatever still repeats within a side ("key#2").
func disambiguate(base, cand []entry) {
	ambiguous := make(map[string]bool)
	for _, side := range [][]entry{base, cand} {
		seen := make(map[string]bool, len(side))
		for _, e := range side {
			if seen[e.key] {
				ambiguous[e.key] = true
			}
			seen[e.key] = true
		}
	}
	if len(ambiguous) == 0 {
		return
	}

	for _, side := range [][]entry{base, cand} {
		counts := make(map[string]int, len(side))
		for i := range side {
			if ambiguous[side[i].key] && side[i].alt != "" {
				side[i].key = side[i].alt
			}
			counts[side[i].key]++
			if n := counts[side[i].key]; n > 1 {
				side[i].key += "#" + strconv.Itoa(n)
			}
		}
	}
}
