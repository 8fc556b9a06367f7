package main

import (
	"io"
	"os"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"
)

const configPath = "config.yaml"

func main() {
	cfg, err := fetchConfig(configPath)
	if err != nil {
		logWarn("using default config: %v", err)
		cfg = defaultConfig()
	}
	if err := setLogLevel(cfg.LogLevel); err != nil {
		logWarn("log level: %v", err)
	}

	doc := js.Global().Get("document")
	if logDiv := doc.Call("getElementById", cfg.LogElement); !logDiv.IsNull() {
		setLogOutput(io.MultiWriter(os.Stderr, &elementWriter{el: logDiv}))
	}

	canvas := doc.Call("getElementById", cfg.Canvas)
	if canvas.IsNull() {
		logError("canvas %q not found", cfg.Canvas)
		return
	}
	gl, err := webgl.New(canvas)
	if err != nil {
		logError("%v", err)
		return
	}
	logGPUInfo(gl)
	if err := run(gl, cfg); err != nil {
		logError("%v", err)
	}
}

func fetchConfig(path string) (*config, error) {
	b, err := fetchGet(path)
	if err != nil {
		return nil, err
	}
	return loadConfig(path, b)
}

func run(gl *webgl.WebGL, cfg *config) error {
	progTriangle, err := newProgram(gl, vsTriangleSource, fsTriangleSource)
	if err != nil {
		return err
	}
	progText, err := newProgram(gl, vsTextSource, fsTextSource)
	if err != nil {
		return err
	}
	samplerLocation := gl.GetUniformLocation(progText.Program, "uSampler")

	cloud, err := newTriangleCloud()
	if err != nil {
		return err
	}
	posBuf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(cloud.Data), gl.STATIC_DRAW)
	colorBuf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, colorBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(triangleColors), gl.STATIC_DRAW)
	textBuf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, textBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(textVertices), gl.STATIC_DRAW)

	tex := newTextTexture(gl, cfg)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	const (
		aPosition = 0
		aColor    = 1
		aTexCoord = 1
	)
	gl.EnableVertexAttribArray(aPosition)
	gl.EnableVertexAttribArray(aColor)

	gl.UseProgram(progText.Program)
	gl.UniformMatrix4fv(progText.model, false, uniform(textModel(cfg.TextOffset)))
	gl.Uniform1i(samplerLocation, 0)

	var width, height int
	updateProjection := func(w, h int) {
		gl.Canvas.SetWidth(w)
		gl.Canvas.SetHeight(h)
		gl.UseProgram(progTriangle.Program)
		gl.UniformMatrix4fv(progTriangle.projection, false, uniform(triangleProjection(w, h)))
		gl.UseProgram(progText.Program)
		gl.UniformMatrix4fv(progText.projection, false, uniform(textProjection(w, h)))
		gl.Viewport(0, 0, w, h)
	}

	chErr := make(chan error)
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		e.PreventDefault()
		chErr <- errContextLost
	})
	chMouseDown := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})
	chClick := make(chan webgl.MouseEvent)
	gl.Canvas.OnClick(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chClick <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})
	chKeyDown := make(chan webgl.KeyboardEvent)
	gl.Canvas.OnKeyDown(func(e webgl.KeyboardEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chKeyDown <- e
	})
	chKeyUp := make(chan webgl.KeyboardEvent)
	gl.Canvas.OnKeyUp(func(e webgl.KeyboardEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chKeyUp <- e
	})
	gl.Canvas.Focus()

	rot := newRotation(cfg.AnimationStep)
	cg := &clickGuard{}
	con := &console{rot: rot}

	chConsole := make(chan consoleCall)
	exposeConsole("glrotateConsole", chConsole)

	tick := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer tick.Stop()

	logInfo("started")

	for {
		newWidth := gl.Canvas.ClientWidth()
		newHeight := gl.Canvas.ClientHeight()
		if newWidth != width || newHeight != height {
			width, height = newWidth, newHeight
			updateProjection(width, height)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(progTriangle.Program)
		gl.UniformMatrix4fv(progTriangle.model, false, uniform(rot.model()))
		gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
		gl.VertexAttribPointer(aPosition, 3, gl.FLOAT, false, cloud.Stride(), 0)
		gl.BindBuffer(gl.ARRAY_BUFFER, colorBuf)
		gl.VertexAttribPointer(aColor, 3, gl.FLOAT, false, 3*4, 0)
		gl.DrawArrays(gl.TRIANGLES, 0, cloud.Points)

		gl.UseProgram(progText.Program)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BindBuffer(gl.ARRAY_BUFFER, textBuf)
		gl.VertexAttribPointer(aPosition, 2, gl.FLOAT, false, 4*4, 0)
		gl.VertexAttribPointer(aTexCoord, 2, gl.FLOAT, false, 4*4, 2*4)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		gl.BindTexture(gl.TEXTURE_2D, nil)

		select {
		case err := <-chErr:
			return err
		case c := <-chConsole:
			con.call(c)
		case <-tick.C:
			if rot.animating && !rot.frame() {
				logDebug("animation finished")
			}
		case e := <-chMouseDown:
			if e.Button == 0 {
				cg.Press(e.OffsetX, e.OffsetY)
			}
		case e := <-chMouseMove:
			cg.Move(e.OffsetX, e.OffsetY)
			rot.pointer(e.OffsetY, height)
		case e := <-chMouseUp:
			if e.Button == 0 {
				cg.Release()
			}
		case e := <-chClick:
			if e.Button == 0 && cg.Click() {
				rot.toggleAnimation()
				logDebug("animation: %v", rot.animating)
			}
			gl.Canvas.Focus()
		case e := <-chKeyDown:
			if e.Code == "Escape" {
				rot.reset()
				break
			}
			if a, ok := cfg.axisOfKey(e.Code); ok {
				rot.press(a)
			}
		case e := <-chKeyUp:
			if a, ok := cfg.axisOfKey(e.Code); ok {
				rot.release(a)
			}
		}
	}
}
