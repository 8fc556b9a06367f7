package main

import (
	webgl "github.com/seqsense/webgl-go"
)

// logGPUInfo reports the renderer, which helps with context lost reports.
func logGPUInfo(gl *webgl.WebGL) {
	defer func() {
		if r := recover(); r != nil {
			logWarn("failed to get GPU info: %v", r)
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logInfo("GPU info: hidden by the browser privacy setting")
		return
	}
	logInfo("GPU: %s %s",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
	logDebug("max texture size: %d",
		gl.GetParameter(gl.JS().Get("MAX_TEXTURE_SIZE").Int()).Int(),
	)
}
