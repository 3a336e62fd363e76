package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naum/internal/model"
	"naum/internal/snapshot"
	"naum/modifier"
)

type workspace struct {
	t      *testing.T
	dir    string
	config string
}

// newWorkspace writes a naum.toml whose [report] table continues with reportKeys.
func newWorkspace(t *testing.T, reportKeys string) *workspace {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "naum.toml")
	require.NoError(t, os.WriteFile(path, []byte("[report]\ncolor = \"never\"\n"+reportKeys), 0o644))

	return &workspace{t: t, dir: dir, config: path}
}

// write stores the types as a snapshot file and returns its path.
func (w *workspace) write(name string, types ...*model.TypeInfo) string {
	w.t.Helper()

	path := filepath.Join(w.dir, name)
	require.NoError(w.t, snapshot.WriteFile(path, model.Must(model.NewModelSet(types...))))

	return path
}

func (w *workspace) run(args ...string) (string, error) {
	w.t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config", w.config))
	err := cmd.Execute()

	return out.String(), err
}

func classWith(t *testing.T, name string, methods ...*model.MethodInfo) *model.TypeInfo {
	t.Helper()

	ti := model.Must(model.NewClass().Name(name).Modifiers(modifier.Public | modifier.Super).Superclass(model.ObjectType).Build())
	for _, m := range methods {
		require.NoError(t, ti.AddMethod(m))
	}
	require.NoError(t, ti.Seal())

	return ti
}

func method(name string, mods modifier.Modifiers) *model.MethodInfo {
	return model.Must(model.NewMethod().Name(name).Modifiers(mods).Build())
}

func TestDiff_NarrowedVisibilityFails(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A", method("foo", modifier.Public)))
	cand := w.write("cand.cbor", classWith(t, "p.A", method("foo", modifier.Protected)))

	out, err := w.run("diff", base, cand)

	assert.ErrorIs(t, err, errBreaking)
	assert.Contains(t, out, "[BREAKING] p.A#foo(): MODIFIED")
	assert.Contains(t, out, "visibility: public -> protected")
}

func TestDiff_FailOnBreakingCanBeDisabled(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A", method("foo", modifier.Public)))
	cand := w.write("cand.yaml", classWith(t, "p.A"))

	_, err := w.run("diff", base, cand, "--fail-on-breaking=false")
	assert.NoError(t, err)

	quiet := newWorkspace(t, "fail_on_breaking = false\n")
	out, err := quiet.run("diff", base, cand)
	assert.NoError(t, err)
	assert.Contains(t, out, "[BREAKING] p.A#foo(): MEMBER_REMOVED")
}

func TestDiff_Unchanged(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A", method("foo", modifier.Public)))
	cand := w.write("cand.msgpack", classWith(t, "p.A", method("foo", modifier.Public)))

	out, err := w.run("diff", base, cand)
	require.NoError(t, err)
	assert.Equal(t, "1 records: 0 breaking, 0 non-breaking, 1 unchanged types\n", out)

	out, err = w.run("diff", "--all", base, cand)
	require.NoError(t, err)
	assert.Contains(t, out, "[NONE] p.A: UNCHANGED")
}

func TestDiff_AudienceOverride(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A", method("helper", modifier.Private)))
	cand := w.write("cand.yaml", classWith(t, "p.A"))

	out, err := w.run("diff", base, cand)
	require.NoError(t, err)
	assert.Contains(t, out, "[NON_BREAKING] p.A#helper(): MEMBER_REMOVED")

	out, err = w.run("diff", "--audience", "internal", base, cand)
	assert.ErrorIs(t, err, errBreaking)
	assert.Contains(t, out, "[BREAKING] p.A#helper(): MEMBER_REMOVED")
}

func TestDiff_YAMLOutput(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A"))
	cand := w.write("cand.yaml")

	out, err := w.run("diff", "--format", "yaml", base, cand)
	assert.ErrorIs(t, err, errBreaking)
	assert.Contains(t, out, "change: TYPE_REMOVED")
	assert.Contains(t, out, "severity: BREAKING")
}

func TestDiff_MergesSnapshotFiles(t *testing.T) {
	w := newWorkspace(t, "")
	a := w.write("a.yaml", classWith(t, "p.A"))
	b := w.write("b.yaml", classWith(t, "p.B"))
	both := w.write("both.cbor", classWith(t, "p.A"), classWith(t, "p.B"))

	out, err := w.run("diff", a+","+b, both)
	require.NoError(t, err)
	assert.Contains(t, out, "2 unchanged types")

	_, err = w.run("diff", a+","+a, both)
	assert.ErrorContains(t, err, "duplicate type")
}

func TestDiff_Errors(t *testing.T) {
	w := newWorkspace(t, "")
	base := w.write("base.yaml", classWith(t, "p.A"))

	_, err := w.run("diff", base, filepath.Join(w.dir, "missing.yaml"))
	assert.ErrorContains(t, err, "candidate:")

	_, err = w.run("diff", base, base, "--format", "html")
	assert.ErrorContains(t, err, `unknown output format "html"`)

	_, err = w.run("diff", base, base, "--color", "rainbow")
	assert.ErrorContains(t, err, "unknown color mode")

	_, err = w.run("diff", base, " , ")
	assert.ErrorContains(t, err, "no snapshot files")

	_, err = w.run("diff", base)
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	w := newWorkspace(t, "")
	a := classWith(t, "p.A", method("foo", modifier.Public))
	path := w.write("api.yaml", a)

	out, err := w.run("digest", path)
	require.NoError(t, err)
	assert.Equal(t, model.Must(a.Digest()).String()+"  p.A\n", out)

	out, err = w.run("digest", "--content", path)
	require.NoError(t, err)
	assert.Equal(t, "p.A\t"+model.Must(a.Content())+"\n", out)
}

func TestConvert(t *testing.T) {
	w := newWorkspace(t, "")
	a, b := classWith(t, "p.A"), classWith(t, "p.B", method("run", modifier.Public))
	first := w.write("a.yaml", a)
	second := w.write("b.msgpack", b)
	merged := filepath.Join(w.dir, "merged.cbor")

	out, err := w.run("convert", first, second, merged)
	require.NoError(t, err)
	assert.Equal(t, "wrote 2 types to "+merged+"\n", out)

	out, err = w.run("digest", merged)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		model.Must(a.Digest()).String() + "  p.A",
		model.Must(b.Digest()).String() + "  p.B",
	}, lines)
}
