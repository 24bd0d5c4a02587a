package bookmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"orbitview/camera"
)

func TestSaveAndRestoreOrbit(t *testing.T) {
	o := camera.New(3, camera.WithTarget(mgl32.Vec3{1, 2, 3}))
	o.Update(0.75, -0.25, 1.5)

	p := filepath.Join(t.TempDir(), "view.pb")
	require.NoError(t, Save(p, o.Pose()))

	pose, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, o.Pose(), pose)

	restored := camera.New(1)
	restored.SetPose(pose)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, o.Position()[i], restored.Position()[i], 1e-5)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

func TestDecodeRejectsIncomplete(t *testing.T) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"version":     version,
		"orientation": []interface{}{1, 0, 0},
		"radius":      2,
		"target":      []interface{}{0, 0, 0},
	})
	require.NoError(t, err)
	data, err := proto.Marshal(msg)
	require.NoError(t, err)
	_, err = Decode(data)
	assert.Error(t, err)

	msg.Fields["version"] = structpb.NewNumberValue(7)
	data, err = proto.Marshal(msg)
	require.NoError(t, err)
	_, err = Decode(data)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.pb"))
	assert.True(t, os.IsNotExist(err))
}
