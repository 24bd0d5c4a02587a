package viewer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"orbitview/canvas"
	"orbitview/config"
	"orbitview/mesh"
	"orbitview/texture"
)

const (
	diffuseUnit  = 0
	specularUnit = 1
	ambientUnit  = 2
)

type drawGroup struct {
	first, count int32
	material     *mesh.Material
	// indexed by texture unit
	textures [3]uint32
}

// scene owns the GL objects of the loaded mesh.
type scene struct {
	cfg     *config.Config
	log     *zap.Logger
	program *canvas.Program

	triangles *canvas.Vao
	groups    []drawGroup
	textures  map[string]uint32
	white     uint32

	model mgl32.Mat4
	mode  string
}

func newScene(cfg *config.Config, m *mesh.Mesh, log *zap.Logger) (*scene, error) {
	s := &scene{
		cfg:      cfg,
		log:      log,
		textures: map[string]uint32{},
		mode:     cfg.Mesh.Mode,
	}
	program, err := canvas.NewProgramFromFiles(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return nil, err
	}
	s.setProgram(program)

	white, err := canvas.NewTexture(texture.Solid(color.RGBA{255, 255, 255, 255}), gl.TEXTURE0)
	if err != nil {
		s.delete()
		return nil, err
	}
	s.white = white

	layout := []canvas.Attrib{{Index: 0, Size: 3}, {Index: 1, Size: 3}, {Index: 2, Size: 2}}
	verts, groups := m.Interleave()
	s.triangles = canvas.MakeVao(verts, layout...)

	for _, g := range groups {
		mat := mesh.DefaultMaterial()
		if g.Material != "" {
			mat = m.Materials[g.Material]
		}
		dg := drawGroup{first: int32(g.First), count: int32(g.Count), material: mat}
		for unit, file := range map[int]string{
			diffuseUnit:  mat.DiffuseMap,
			specularUnit: mat.SpecularMap,
			ambientUnit:  mat.AmbientMap,
		} {
			if dg.textures[unit], err = s.loadTexture(file); err != nil {
				s.delete()
				return nil, fmt.Errorf("material %q: %w", g.Material, err)
			}
		}
		s.groups = append(s.groups, dg)
	}

	min, max := m.Bounds()
	s.model = mesh.FitMatrix(min, max, cfg.Mesh.RotateX, cfg.Mesh.Scale)
	log.Info("Scene ready",
		zap.Int("groups", len(s.groups)),
		zap.Int("textures", len(s.textures)),
		zap.Int32("vertices", s.triangles.Count))
	return s, nil
}

// loadTexture returns the white texture for an empty path and uploads each
// file only once.
func (s *scene) loadTexture(file string) (uint32, error) {
	if file == "" {
		return s.white, nil
	}
	if tex, ok := s.textures[file]; ok {
		return tex, nil
	}
	img, err := texture.LoadImage(file)
	if err != nil {
		return 0, err
	}
	tex, err := canvas.NewTexture(img, gl.TEXTURE0)
	if err != nil {
		return 0, fmt.Errorf("texture %q: %w", file, err)
	}
	s.textures[file] = tex
	s.log.Debug("Texture loaded", zap.String("file", file), zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
	return tex, nil
}

// setProgram swaps in a newly linked program and binds its samplers to
// their texture units.
func (s *scene) setProgram(p *canvas.Program) {
	if s.program != nil {
		s.program.Delete()
	}
	s.program = p
	p.Use()
	p.SetInt("material.diffuseMap", diffuseUnit)
	p.SetInt("material.specularMap", specularUnit)
	p.SetInt("material.ambientMap", ambientUnit)
}

// reload recompiles the shader pair. On failure the current program stays.
func (s *scene) reload() error {
	p, err := canvas.NewProgramFromFiles(s.cfg.Shaders.Vertex, s.cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	s.setProgram(p)
	return nil
}

func (s *scene) toggleMode() {
	if s.mode == config.RenderPoints {
		s.mode = config.RenderTriangles
	} else {
		s.mode = config.RenderPoints
	}
}

func (s *scene) draw(view, projection mgl32.Mat4, lightPos mgl32.Vec3) {
	modelView := view.Mul4(s.model)
	p := s.program
	p.Use()
	p.SetMat4("mvp", projection.Mul4(modelView))
	p.SetMat4("modelView", modelView)
	p.SetMat3("normalMatrix", modelView.Mat3().Inv().Transpose())
	p.SetFloat("pointSize", s.cfg.Mesh.PointSize)

	lc := s.cfg.Light
	p.SetVec3("light.position", view.Mul4x1(lightPos.Vec4(1)).Vec3())
	p.SetVec3("light.ambient", lc.Ambient)
	p.SetVec3("light.diffuse", lc.Diffuse)
	p.SetVec3("light.specular", lc.Specular)

	if s.mode == config.RenderPoints {
		s.bindMaterial(mesh.DefaultMaterial(), [3]uint32{s.white, s.white, s.white})
		// every triangle corner becomes a point; shared vertices overdraw
		s.triangles.DrawAll(gl.POINTS)
		return
	}
	for _, g := range s.groups {
		s.bindMaterial(g.material, g.textures)
		s.triangles.Draw(gl.TRIANGLES, g.first, g.count)
	}
}

func (s *scene) bindMaterial(m *mesh.Material, textures [3]uint32) {
	p := s.program
	p.SetVec3("material.ambient", m.Ambient)
	p.SetVec3("material.diffuse", m.Diffuse)
	p.SetVec3("material.specular", m.Specular)
	p.SetFloat("material.shininess", m.Shininess)
	for unit, tex := range textures {
		canvas.BindTexture(gl.TEXTURE0+uint32(unit), tex)
	}
}

func (s *scene) delete() {
	if s.program != nil {
		s.program.Delete()
	}
	if s.triangles != nil {
		s.triangles.Delete()
	}
	for _, tex := range s.textures {
		canvas.DeleteTexture(tex)
	}
	if s.white != 0 {
		canvas.DeleteTexture(s.white)
	}
}
