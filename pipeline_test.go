package sandbox_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sandbox"
)

// recordingFS records every file opened through it.
type recordingFS struct {
	files  fstest.MapFS
	opened []string
}

func (r *recordingFS) Open(name string) (fs.File, error) {
	r.opened = append(r.opened, name)
	return r.files.Open(name)
}

type compileCall struct {
	kind   sandbox.StageKind
	source string
}

// fakeCompiler hands out increasing ids and records every call.
type fakeCompiler struct {
	next            uint32
	compiled        []compileCall
	attached        map[uint32][]uint32
	linked          []uint32
	deletedShaders  []uint32
	deletedPrograms []uint32

	failCompile map[sandbox.StageKind]bool
	failLink    bool
}

func newFakeCompiler() *fakeCompiler {
	return &fakeCompiler{attached: make(map[uint32][]uint32), failCompile: make(map[sandbox.StageKind]bool)}
}

func (c *fakeCompiler) id() uint32 {
	c.next++
	return c.next
}

func (c *fakeCompiler) CompileShader(kind sandbox.StageKind, source string) (uint32, string, bool) {
	c.compiled = append(c.compiled, compileCall{kind: kind, source: source})
	id := c.id()
	if c.failCompile[kind] || source == "" {
		return id, "0:1: syntax error", false
	}
	return id, "", true
}

func (c *fakeCompiler) CreateProgram() uint32 { return c.id() }

func (c *fakeCompiler) AttachShader(program, shader uint32) {
	c.attached[program] = append(c.attached[program], shader)
}

func (c *fakeCompiler) LinkProgram(program uint32) (string, bool) {
	c.linked = append(c.linked, program)
	if c.failLink {
		return "error: vertex output not read by fragment", false
	}
	return "", true
}

func (c *fakeCompiler) DeleteShader(shader uint32)   { c.deletedShaders = append(c.deletedShaders, shader) }
func (c *fakeCompiler) DeleteProgram(program uint32) { c.deletedPrograms = append(c.deletedPrograms, program) }

func shaderFiles(dir string) fstest.MapFS {
	files := fstest.MapFS{}
	for _, s := range sandbox.DefaultStages(dir) {
		files[s.Path] = &fstest.MapFile{Data: []byte("// " + s.Kind.String())}
	}
	return files
}

func TestBuildPipelineDefaultTable(t *testing.T) {
	fsys := &recordingFS{files: shaderFiles("shaders")}
	c := newFakeCompiler()

	p := sandbox.BuildPipeline(fsys, sandbox.DefaultStages("shaders"), c)

	require.NoError(t, p.Err())
	assert.Equal(t, []sandbox.StageKind{sandbox.StageVertex, sandbox.StageFragment}, p.Stages)
	assert.Equal(t, []string{"shaders/Vertex.shader", "shaders/Fragment.shader"}, fsys.opened)

	require.Len(t, c.compiled, 2)
	assert.Equal(t, "// vertex", c.compiled[0].source)
	assert.Equal(t, "// fragment", c.compiled[1].source)

	assert.Len(t, c.attached[p.ID], 2, "program should reference exactly two stages")
	assert.Equal(t, []uint32{p.ID}, c.linked)
	assert.ElementsMatch(t, c.attached[p.ID], c.deletedShaders, "shader objects are deleted after linking")
}

func TestBuildPipelineReadsOnlyEnabledStages(t *testing.T) {
	base := sandbox.DefaultStages("shaders")

	for mask := 0; mask < 1<<len(base); mask++ {
		stages := make([]sandbox.Stage, len(base))
		copy(stages, base)

		var want []string
		var wantKinds []sandbox.StageKind
		for i := range stages {
			stages[i].Enabled = mask&(1<<i) != 0
			if stages[i].Enabled {
				want = append(want, stages[i].Path)
				wantKinds = append(wantKinds, stages[i].Kind)
			}
		}

		fsys := &recordingFS{files: shaderFiles("shaders")}
		c := newFakeCompiler()
		p := sandbox.BuildPipeline(fsys, stages, c)

		assert.Equal(t, want, fsys.opened, "mask %06b", mask)
		assert.Equal(t, wantKinds, p.Stages, "mask %06b", mask)
		assert.Len(t, c.compiled, len(want), "mask %06b", mask)
		assert.Len(t, c.attached[p.ID], len(want), "mask %06b", mask)
	}
}

func TestBuildPipelineMissingFileCompilesEmptySource(t *testing.T) {
	files := shaderFiles("shaders")
	delete(files, "shaders/Fragment.shader")
	c := newFakeCompiler()

	p := sandbox.BuildPipeline(files, sandbox.DefaultStages("shaders"), c)

	require.Len(t, c.compiled, 2)
	assert.Equal(t, "", c.compiled[1].source)
	assert.NotZero(t, p.ID, "program is still created")
	assert.Len(t, c.attached[p.ID], 2)

	require.Len(t, p.Diagnostics, 2)
	assert.Equal(t, sandbox.DiagMissingSource, p.Diagnostics[0].Kind)
	assert.Equal(t, sandbox.DiagCompile, p.Diagnostics[1].Kind)
	assert.Equal(t, sandbox.StageFragment, p.Diagnostics[1].Stage)
	assert.Error(t, p.Err())
}

func TestBuildPipelineFailuresAreNotFatal(t *testing.T) {
	c := newFakeCompiler()
	c.failCompile[sandbox.StageVertex] = true
	c.failLink = true

	p := sandbox.BuildPipeline(shaderFiles("s"), sandbox.DefaultStages("s"), c)

	assert.NotZero(t, p.ID)
	assert.Len(t, c.attached[p.ID], 2)
	require.Len(t, p.Diagnostics, 2)
	assert.Equal(t, sandbox.DiagCompile, p.Diagnostics[0].Kind)
	assert.Equal(t, sandbox.DiagLink, p.Diagnostics[1].Kind)
	assert.Contains(t, p.Err().Error(), "syntax error")
	assert.Contains(t, p.Err().Error(), "program link failed")
}

func TestProgramDelete(t *testing.T) {
	c := newFakeCompiler()
	p := sandbox.BuildPipeline(shaderFiles("s"), sandbox.DefaultStages("s"), c)
	id := p.ID

	p.Delete(c)
	p.Delete(c)

	assert.Equal(t, []uint32{id}, c.deletedPrograms)
	assert.Zero(t, p.ID)
}
