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

// Material holds the Phong parameters of one newmtl block. Map paths are
// already resolved against the directory of the MTL file.
type Material struct {
	Name      string
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32

	AmbientMap  string
	DiffuseMap  string
	SpecularMap string
}

// DefaultMaterial is used for faces outside any usemtl block.
func DefaultMaterial() *Material {
	return &Material{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32,
	}
}

func LoadMaterials(p string) (map[string]*Material, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mats, err := ParseMaterials(f, filepath.Dir(p))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return mats, nil
}

func ParseMaterials(r io.Reader, dir string) (map[string]*Material, error) {
	mats := map[string]*Material{}
	var cur *Material
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		ss := strings.Fields(row)
		if ss[0] == "newmtl" {
			if len(ss) < 2 {
				return nil, fmt.Errorf("line %d: newmtl without a name", line)
			}
			cur = DefaultMaterial()
			cur.Name = ss[1]
			mats[cur.Name] = cur
			continue
		}
		if cur == nil {
			continue
		}
		if err := parseMaterialRow(cur, ss, dir); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mats, nil
}

func parseMaterialRow(m *Material, ss []string, dir string) error {
	color := func(dst *mgl32.Vec3) error {
		v, err := parseFloats(ss[1:], 3)
		if err != nil {
			return err
		}
		*dst = mgl32.Vec3{v[0], v[1], v[2]}
		return nil
	}
	texture := func(dst *string) error {
		if len(ss) < 2 {
			return fmt.Errorf("%s without a file", ss[0])
		}
		// options such as -bm come before the file name, which is last
		file := ss[len(ss)-1]
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		*dst = file
		return nil
	}
	switch ss[0] {
	case "Ka":
		return color(&m.Ambient)
	case "Kd":
		return color(&m.Diffuse)
	case "Ks":
		return color(&m.Specular)
	case "Ns":
		if len(ss) < 2 {
			return fmt.Errorf("Ns without a value")
		}
		v, err := strconv.ParseFloat(ss[1], 32)
		if err != nil {
			return fmt.Errorf("bad number %q", ss[1])
		}
		m.Shininess = float32(v)
	case "map_Ka":
		return texture(&m.AmbientMap)
	case "map_Kd":
		return texture(&m.DiffuseMap)
	case "map_Ks":
		return texture(&m.SpecularMap)
	}
	return nil
}
