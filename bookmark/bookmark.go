// Package bookmark stores camera poses on disk as protobuf messages.
package bookmark

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"orbitview/camera"
)

const version = 1

func Encode(p camera.Pose) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"version":     version,
		"orientation": []interface{}{float64(p.Orientation.W), float64(p.Orientation.V[0]), float64(p.Orientation.V[1]), float64(p.Orientation.V[2])},
		"radius":      float64(p.Radius),
		"target":      []interface{}{float64(p.Target[0]), float64(p.Target[1]), float64(p.Target[2])},
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

func Decode(data []byte) (camera.Pose, error) {
	var pose camera.Pose
	msg := &structpb.Struct{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return pose, err
	}
	fields := msg.GetFields()
	if v := fields["version"].GetNumberValue(); v != version {
		return pose, fmt.Errorf("unsupported bookmark version %v", v)
	}
	q, err := floats(fields, "orientation", 4)
	if err != nil {
		return pose, err
	}
	t, err := floats(fields, "target", 3)
	if err != nil {
		return pose, err
	}
	r, ok := fields["radius"].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return pose, fmt.Errorf("bookmark has no radius")
	}
	pose.Orientation = mgl32.Quat{W: q[0], V: mgl32.Vec3{q[1], q[2], q[3]}}
	pose.Target = mgl32.Vec3{t[0], t[1], t[2]}
	pose.Radius = float32(r.NumberValue)
	return pose, nil
}

func floats(fields map[string]*structpb.Value, key string, n int) ([]float32, error) {
	list := fields[key].GetListValue().GetValues()
	if len(list) != n {
		return nil, fmt.Errorf("bookmark %s: expected %d values, got %d", key, n, len(list))
	}
	res := make([]float32, n)
	for i, v := range list {
		num, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("bookmark %s: value %d is not a number", key, i)
		}
		res[i] = float32(num.NumberValue)
	}
	return res, nil
}

func Save(path string, p camera.Pose) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Load(path string) (camera.Pose, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return camera.Pose{}, err
	}
	p, err := Decode(data)
	if err != nil {
		return camera.Pose{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
