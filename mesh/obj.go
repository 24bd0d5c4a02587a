package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Corner indexes into Positions, TexCoords and Normals. A missing
// texcoord or normal is -1.
type Corner struct {
	V, T, N int
}

type Triangle [3]Corner

// Group is a run of triangles that share a material.
type Group struct {
	Material string
	// First and Count are in triangles.
	First, Count int
}

// Mesh is the geometry read from an OBJ file.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Normals   []mgl32.Vec3
	Triangles []Triangle
	Groups    []Group
	Materials map[string]*Material
	// MaterialLibs are the mtllib paths, resolved against the OBJ directory.
	MaterialLibs []string
}

func (m *Mesh) VertexCount() int   { return len(m.Positions) }
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// Load reads an OBJ file and every material library it references.
func Load(p string) (*Mesh, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f, filepath.Dir(p))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	m.Name = filepath.Base(p)
	for _, lib := range m.MaterialLibs {
		mats, err := LoadMaterials(lib)
		if err != nil {
			return nil, fmt.Errorf("material library of %s: %w", p, err)
		}
		for name, mat := range mats {
			m.Materials[name] = mat
		}
	}
	for _, g := range m.Groups {
		if g.Material == "" {
			continue
		}
		if _, ok := m.Materials[g.Material]; !ok {
			return nil, fmt.Errorf("%s: material %q is used but not defined", p, g.Material)
		}
	}
	return m, nil
}

// Parse reads OBJ statements from r. Material libraries are recorded in
// MaterialLibs relative to dir but not loaded.
func Parse(r io.Reader, dir string) (*Mesh, error) {
	m := &Mesh{Materials: map[string]*Material{}}
	p := &objParser{mesh: m, dir: dir}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		if err := p.parseRow(strings.Fields(row)); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.closeGroup()
	return m, nil
}

type objParser struct {
	mesh    *Mesh
	dir     string
	line    int
	current string
	first   int
}

func (p *objParser) parseRow(ss []string) error {
	m := p.mesh
	switch ss[0] {
	case "v":
		v, err := parseFloats(ss[1:], 3)
		if err != nil {
			return err
		}
		m.Positions = append(m.Positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		// u [v [w]], w is not used
		if len(ss) < 2 {
			return fmt.Errorf("vt needs at least one value")
		}
		n := len(ss) - 1
		if n > 2 {
			n = 2
		}
		v, err := parseFloats(ss[1:], n)
		if err != nil {
			return err
		}
		var uv mgl32.Vec2
		copy(uv[:], v)
		m.TexCoords = append(m.TexCoords, uv)
	case "vn":
		v, err := parseFloats(ss[1:], 3)
		if err != nil {
			return err
		}
		m.Normals = append(m.Normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return p.parseFace(ss[1:])
	case "usemtl":
		if len(ss) < 2 {
			return fmt.Errorf("usemtl without a name")
		}
		p.closeGroup()
		p.current = ss[1]
	case "mtllib":
		for _, lib := range ss[1:] {
			m.MaterialLibs = append(m.MaterialLibs, filepath.Join(p.dir, lib))
		}
	}
	return nil
}

func (p *objParser) closeGroup() {
	m := p.mesh
	if n := len(m.Triangles) - p.first; n > 0 {
		m.Groups = append(m.Groups, Group{Material: p.current, First: p.first, Count: n})
	}
	p.first = len(m.Triangles)
}

func (p *objParser) parseFace(ss []string) error {
	if len(ss) < 3 {
		return fmt.Errorf("face needs at least 3 corners, got %d", len(ss))
	}
	m := p.mesh
	corners := make([]Corner, 0, len(ss))
	for _, s := range ss {
		parts := strings.Split(s, "/")
		c := Corner{T: -1, N: -1}
		var err error
		if c.V, err = resolveIndex(parts[0], len(m.Positions)); err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.T, err = resolveIndex(parts[1], len(m.TexCoords)); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.N, err = resolveIndex(parts[2], len(m.Normals)); err != nil {
				return err
			}
		}
		corners = append(corners, c)
	}
	for i := 2; i < len(corners); i++ {
		m.Triangles = append(m.Triangles, Triangle{corners[0], corners[i-1], corners[i]})
	}
	return nil
}

// resolveIndex turns a 1-based or negative relative OBJ index into a 0-based one.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i += count
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (%d defined)", s, count)
	}
	return i, nil
}

func parseFloats(ss []string, n int) ([]float32, error) {
	if len(ss) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(ss))
	}
	res := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(ss[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", ss[i])
		}
		res[i] = float32(v)
	}
	return res, nil
}
