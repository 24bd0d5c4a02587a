package viewer

var lampVertexShader = `
#version 330 core
layout (location = 0) in vec3 position;

uniform mat4 mvp;

void main()
{
	gl_Position = mvp * vec4(position, 1.0);
}
` + "\x00"

var lampFragmentShader = `
#version 330 core
out vec4 fragColor;

uniform vec3 color;

void main()
{
	fragColor = vec4(color, 1.0);
}
` + "\x00"

// The overlay quad is given in pixels with the origin at the top left.
var overlayVertexShader = `
#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texCoord;

uniform vec2 viewport;
uniform vec2 offset;
uniform vec2 size;

out vec2 uv;

void main()
{
	vec2 p = offset + position * size;
	gl_Position = vec4(p.x / viewport.x * 2.0 - 1.0, 1.0 - p.y / viewport.y * 2.0, 0.0, 1.0);
	uv = texCoord;
}
` + "\x00"

var overlayFragmentShader = `
#version 330 core
in vec2 uv;

out vec4 fragColor;

uniform sampler2D text;

void main()
{
	fragColor = texture(text, uv);
}
` + "\x00"
