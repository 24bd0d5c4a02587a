package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"orbitview/config"
)

func initGlfw() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
}

func createWindow(cfg config.WindowConfig, log *zap.Logger) (*glfw.Window, error) {
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize a GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	// Initialize Glow
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	log.Info("OpenGL context ready", zap.String("version", version), zap.String("renderer", renderer))

	window.SetDropCallback(func(w *glfw.Window, names []string) {
		log.Info("Ignoring dropped files, pass the mesh on the command line", zap.Strings("files", names))
	})
	window.SetCloseCallback(func(w *glfw.Window) {
		log.Info("Window closed")
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return window, nil
}
