package mesh

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeFace = `# a quad split in two
mtllib box.mtl
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl red
f 1/1/1 2/2/1 3/3/1 4/4/1
f 1 2 3
`

func TestParseQuad(t *testing.T) {
	m, err := Parse(strings.NewReader(cubeFace+"usemtl plain\nf 2 3 4\n"), "assets")
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.TriangleCount())
	assert.Equal(t, []string{filepath.Join("assets", "box.mtl")}, m.MaterialLibs)
	assert.Equal(t, Triangle{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}}, m.Triangles[0])
	assert.Equal(t, Triangle{{0, 0, 0}, {2, 2, 0}, {3, 3, 0}}, m.Triangles[1])
	assert.Equal(t, Triangle{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}}, m.Triangles[2])
	assert.Equal(t, Triangle{{1, -1, -1}, {2, -1, -1}, {3, -1, -1}}, m.Triangles[3])
	assert.Equal(t, []Group{
		{Material: "red", First: 0, Count: 3},
		{Material: "plain", First: 3, Count: 1},
	}, m.Groups)
}

func TestParseNegativeAndNormalOnlyIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf -3//1 -2//1 -1//1\n"
	m, err := Parse(strings.NewReader(src), "")
	require.NoError(t, err)
	require.Len(t, m.Triangles, 1)
	assert.Equal(t, Triangle{{0, -1, 0}, {1, -1, 0}, {2, -1, 0}}, m.Triangles[0])
	assert.Equal(t, []Group{{First: 0, Count: 1}}, m.Groups)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad number":    "v 0 x 0\n",
		"short vertex":  "v 0 0\n",
		"out of range":  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"zero index":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"short face":    "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad tex index": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n",
	}
	for name, src := range cases {
		_, err := Parse(strings.NewReader(src), "")
		assert.Error(t, err, name)
	}
	_, err := Parse(strings.NewReader("v 0 0 0\n\nv 0 y 0\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseIgnoresUnknownStatements(t *testing.T) {
	src := "o thing\ng part\ns 1\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := Parse(strings.NewReader(src), "")
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestLoadWithMaterials(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.obj"), []byte(cubeFace), 0644))
	mtl := "newmtl red\nKd 1 0 0\nNs 10\nmap_Kd tex/red.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.mtl"), []byte(mtl), 0644))

	m, err := Load(filepath.Join(dir, "box.obj"))
	require.NoError(t, err)
	assert.Equal(t, "box.obj", m.Name)
	require.Contains(t, m.Materials, "red")
	red := m.Materials["red"]
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, red.Diffuse)
	assert.Equal(t, float32(10), red.Shininess)
	assert.Equal(t, filepath.Join(dir, "tex", "red.png"), red.DiffuseMap)
}

func TestLoadFailsOnMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.obj"), []byte(cubeFace), 0644))
	_, err := Load(filepath.Join(dir, "box.obj"))
	assert.Error(t, err)
}

func TestLoadFailsOnUndefinedMaterial(t *testing.T) {
	dir := t.TempDir()
	src := "mtllib box.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl blue\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.obj"), []byte(src), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.mtl"), []byte("newmtl red\n"), 0644))
	_, err := Load(filepath.Join(dir, "box.obj"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blue")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.obj"))
	assert.Error(t, err)
}

func TestParseLargePolygon(t *testing.T) {
	const corners = 40
	var b strings.Builder
	face := []string{"f"}
	for i := 0; i < corners; i++ {
		a := 2 * math.Pi * float64(i) / corners
		fmt.Fprintf(&b, "v %f %f 0\n", math.Cos(a), math.Sin(a))
		face = append(face, strconv.Itoa(i+1))
	}
	b.WriteString(strings.Join(face, " ") + "\n")

	m, err := Parse(strings.NewReader(b.String()), "")
	require.NoError(t, err)
	require.Equal(t, corners-2, m.TriangleCount())
	last := m.Triangles[corners-3]
	assert.Equal(t, Triangle{{0, -1, -1}, {corners - 2, -1, -1}, {corners - 1, -1, -1}}, last)
}

func TestParseTexCoordArity(t *testing.T) {
	src := "vt 0.5\nvt 0.25 0.75\nvt 0.1 0.2 0.3\n"
	m, err := Parse(strings.NewReader(src), "")
	require.NoError(t, err)
	assert.Equal(t, []mgl32.Vec2{{0.5, 0}, {0.25, 0.75}, {0.1, 0.2}}, m.TexCoords)

	for _, bad := range []string{"vt\n", "vt u\n", "vt 0.5 v\n"} {
		_, err := Parse(strings.NewReader(bad), "")
		assert.Error(t, err, bad)
	}
}
