package main

import (
	"fmt"
	"html"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

// newTextTexture draws the help text on an offscreen 2D canvas and uploads
// it as a texture of textWidth x textHeight pixels.
func newTextTexture(gl *webgl.WebGL, cfg *config) webgl.Texture {
	canvas := js.Global().Get("document").Call("createElement", "canvas")
	canvas.Set("width", textWidth)
	canvas.Set("height", textHeight)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", "white")
	ctx.Set("font", fmt.Sprintf("%dpx %s", cfg.FontSize, cfg.Font))
	for i, line := range cfg.Text {
		lineHeight := textHeight / len(cfg.Text)
		ctx.Call("fillText", line, 0, (i+1)*lineHeight-2)
	}

	tex := gl.CreateTexture()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, canvas)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, nil)
	return tex
}

// elementWriter appends log lines to a DOM element.
type elementWriter struct {
	el js.Value
}

func (w *elementWriter) Write(p []byte) (int, error) {
	s := w.el.Get("innerHTML").String()
	w.el.Set("innerHTML", fmt.Sprintf("%s%s<br/>", s, html.EscapeString(string(p))))
	return len(p), nil
}
