package mesh

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the stride of Interleave: position, normal, uv.
const FloatsPerVertex = 8

// Bounds returns the axis-aligned bounding box of all positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for j := 0; j < 3; j++ {
			if p[j] < min[j] {
				min[j] = p[j]
			}
			if p[j] > max[j] {
				max[j] = p[j]
			}
		}
	}
	return min, max
}

func (m *Mesh) Center() mgl32.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Mul(0.5)
}

// Interleave expands the triangles into a flat vertex buffer. Corners
// without a normal get the face normal, corners without a texcoord get (0,0).
// Returned groups are in vertices rather than triangles.
func (m *Mesh) Interleave() ([]float32, []Group) {
	res := make([]float32, 0, len(m.Triangles)*3*FloatsPerVertex)
	for _, tri := range m.Triangles {
		face := m.faceNormal(tri)
		for _, c := range tri {
			p := m.Positions[c.V]
			n := face
			if c.N >= 0 {
				n = m.Normals[c.N]
			}
			var uv mgl32.Vec2
			if c.T >= 0 {
				uv = m.TexCoords[c.T]
			}
			res = append(res, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
		}
	}
	groups := make([]Group, 0, len(m.Groups))
	for _, g := range m.Groups {
		groups = append(groups, Group{Material: g.Material, First: g.First * 3, Count: g.Count * 3})
	}
	return res, groups
}

func (m *Mesh) faceNormal(tri Triangle) mgl32.Vec3 {
	v0 := m.Positions[tri[0].V]
	e0 := m.Positions[tri[1].V].Sub(v0)
	e1 := m.Positions[tri[2].V].Sub(v0)
	n := e0.Cross(e1)
	if d := n.Len(); d > 0 {
		return n.Mul(1 / d)
	}
	return n
}
