package main

const vsTriangleSource = `#version 300 es
	layout (location = 0) in vec3 aPosition;
	layout (location = 1) in vec3 aColor;
	uniform mat4 uModel;
	uniform mat4 uProjection;
	out lowp vec3 vColor;

	void main(void) {
		vColor = aColor;
		gl_Position = uProjection * uModel * vec4(aPosition, 1.0);
	}
`

const fsTriangleSource = `#version 300 es
	in lowp vec3 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(vColor, 1.0);
	}
`

const vsTextSource = `#version 300 es
	layout (location = 0) in vec2 aPosition;
	layout (location = 1) in vec2 aTextureCoord;
	uniform mat4 uModel;
	uniform mat4 uProjection;
	out highp vec2 vTextureCoord;

	void main(void) {
		vTextureCoord = aTextureCoord;
		gl_Position = uProjection * uModel * vec4(aPosition, 0.0, 1.0);
	}
`

const fsTextSource = `#version 300 es
	in highp vec2 vTextureCoord;
	uniform sampler2D uSampler;
	out lowp vec4 outColor;

	void main(void) {
		outColor = texture(uSampler, vTextureCoord);
	}
`
