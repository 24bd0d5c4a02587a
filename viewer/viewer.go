// Package viewer runs the interactive window: one mesh, an orbiting camera
// and an orbiting light.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"orbitview/bookmark"
	"orbitview/camera"
	"orbitview/config"
	"orbitview/input"
	"orbitview/input/glfwinput"
	"orbitview/logging"
	"orbitview/mesh"
	"orbitview/watch"
)

var lampColor = mgl32.Vec3{1, 1, 0.8}

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	window *glfw.Window
	mesh   *mesh.Mesh
	scene  *scene
	lamp   *lamp
	hud    *overlay

	camera *camera.Orbit
	light  *camera.Orbit

	showHud bool
	fps     fpsCounter
}

// Run opens the window and renders meshPath until the window is closed or
// ctx is done. It must be called from the main OS thread.
func Run(ctx context.Context, cfg *config.Config, meshPath string) error {
	log, ctx := logging.SubFrom(ctx, "viewer")

	if err := initGlfw(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := createWindow(cfg.Window, log)
	if err != nil {
		return err
	}
	defer window.Destroy()

	m, err := mesh.Load(meshPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}
	min, max := m.Bounds()
	log.Info("Mesh loaded",
		zap.String("file", meshPath),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("materials", len(m.Materials)),
		zap.Float32s("min", min[:]),
		zap.Float32s("max", max[:]))

	a := &app{
		cfg:     cfg,
		log:     log,
		window:  window,
		mesh:    m,
		showHud: cfg.Overlay.Enabled,
		camera:  camera.New(cfg.Camera.Radius, camera.WithSpeed(cfg.Camera.ZoomSpeed)),
		light: camera.New(cfg.Light.Radius,
			camera.WithOrientation(mgl32.QuatRotate(-mgl32.DegToRad(cfg.Light.Elevation), mgl32.Vec3{1, 0, 0}))),
	}
	if a.scene, err = newScene(cfg, m, log); err != nil {
		return err
	}
	defer a.scene.delete()
	if a.lamp, err = newLamp(); err != nil {
		return fmt.Errorf("lamp: %w", err)
	}
	defer a.lamp.delete()
	if a.hud, err = newOverlay(cfg.Overlay.FontSize); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	defer a.hud.delete()

	a.restoreBookmark(true)

	var watcher *watch.Watcher
	if cfg.Shaders.HotReload {
		// hot reload is a convenience, the viewer runs fine without it
		if watcher, err = watch.New(cfg.Shaders.Vertex, cfg.Shaders.Fragment); err != nil {
			log.Warn("Shader hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	return a.loop(ctx, glfwinput.NewSource(window), watcher)
}

func (a *app) loop(ctx context.Context, src input.Source, watcher *watch.Watcher) error {
	tracker := input.NewTracker(a.cfg.Input.ZoomScale, a.cfg.Input.ScrollStep)
	cc := a.cfg.Window.ClearColor
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			a.log.Info("Stopping", zap.Error(ctx.Err()))
			return nil
		default:
		}

		f := tracker.Next(src.Poll())
		if f.Quit {
			a.window.SetShouldClose(true)
		}
		a.camera.Update(f.Camera.Phi, f.Camera.Theta, f.Camera.Radius)
		a.light.Update(f.Light.Phi, f.Light.Theta, f.Light.Radius)
		a.handleKeys(f.Pressed)

		if watcher != nil {
			changed, err := watcher.Changed()
			if err != nil {
				a.log.Warn("Shader watcher failed", zap.Error(err))
			}
			if changed {
				a.reloadShaders()
			}
		}

		width, height := a.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(cc[0], cc[1], cc[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		cam := a.cfg.Camera
		projection := camera.Perspective(cam.Fov, width, height, cam.Near, cam.Far)
		view := a.camera.ViewMatrix()
		a.scene.draw(view, projection, a.light.Position())
		if a.cfg.Light.ShowLamp {
			a.lamp.draw(a.light.ModelMatrix(), view, projection, lampColor)
		}
		if a.showHud {
			if err := a.hud.set(a.status()); err != nil {
				a.log.Warn("Overlay disabled", zap.Error(err))
				a.showHud = false
			} else {
				a.hud.draw(width, height)
			}
		}

		a.window.SwapBuffers()
		glfw.PollEvents()
		a.fps.tick(time.Now())
	}
	return nil
}

func (a *app) handleKeys(pressed map[input.Key]bool) {
	for k := range pressed {
		a.log.Debug("Key pressed", zap.Stringer("key", k))
	}
	if pressed[input.KeySpace] {
		a.scene.toggleMode()
		a.log.Info("Render mode", zap.String("mode", a.scene.mode))
	}
	if pressed[input.KeyF6] {
		a.reloadShaders()
	}
	if pressed[input.KeyF5] {
		a.saveBookmark()
	}
	if pressed[input.KeyF9] {
		a.restoreBookmark(false)
	}
	if pressed[input.KeyH] {
		a.showHud = !a.showHud
	}
}

func (a *app) reloadShaders() {
	if err := a.scene.reload(); err != nil {
		a.log.Error("Shader reload failed, keeping the previous program", zap.Error(err))
		return
	}
	a.log.Info("Shaders reloaded",
		zap.String("vertex", a.cfg.Shaders.Vertex),
		zap.String("fragment", a.cfg.Shaders.Fragment))
}

func (a *app) saveBookmark() {
	path := a.cfg.Camera.Bookmark
	if path == "" {
		return
	}
	if err := bookmark.Save(path, a.camera.Pose()); err != nil {
		a.log.Error("Could not save bookmark", zap.String("file", path), zap.Error(err))
		return
	}
	a.log.Info("Bookmark saved", zap.String("file", path))
}

// restoreBookmark applies the saved pose. At startup a missing file is
// expected and stays silent.
func (a *app) restoreBookmark(startup bool) {
	path := a.cfg.Camera.Bookmark
	if path == "" {
		return
	}
	pose, err := bookmark.Load(path)
	if err != nil {
		if startup && errors.Is(err, fs.ErrNotExist) {
			return
		}
		a.log.Error("Could not restore bookmark", zap.String("file", path), zap.Error(err))
		return
	}
	a.camera.SetPose(pose)
	a.log.Info("Bookmark restored", zap.String("file", path), zap.Float32("radius", pose.Radius))
}

func (a *app) status() []string {
	return []string{
		fmt.Sprintf("%s  %d vertices  %d triangles", a.mesh.Name, a.mesh.VertexCount(), a.mesh.TriangleCount()),
		fmt.Sprintf("camera r=%.2f  light r=%.2f  %s", a.camera.Radius(), a.light.Radius(), a.scene.mode),
		fmt.Sprintf("%.0f fps", a.fps.rate),
		"drag: orbit  right drag/wheel: zoom  ctrl: light",
		"space: mode  F5/F9: bookmark  F6: shaders  H: hud  esc: quit",
	}
}

// fpsCounter averages the frame rate over half a second windows so the hud
// text, and with it the overlay texture, changes at most twice a second.
type fpsCounter struct {
	start  time.Time
	frames int
	rate   float64
}

func (c *fpsCounter) tick(now time.Time) {
	if c.start.IsZero() {
		c.start = now
		return
	}
	c.frames++
	if d := now.Sub(c.start); d >= 500*time.Millisecond {
		c.rate = float64(c.frames) / d.Seconds()
		c.frames = 0
		c.start = now
	}
}
