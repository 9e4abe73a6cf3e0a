package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/go-theft-auto/sandbox"
)

// EnableDebugOutput routes GL debug messages to the sandbox logger.
// Messages are delivered synchronously on the calling thread.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugCallback, nil)
}

func debugCallback(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	log := sandbox.Logger()
	if gltype == gl.DEBUG_TYPE_ERROR {
		log.Error("GL error", "type", fmt.Sprintf("0x%x", gltype), "severity", fmt.Sprintf("0x%x", severity), "id", id, "message", message)
		return
	}
	log.Debug("GL debug", "type", fmt.Sprintf("0x%x", gltype), "severity", fmt.Sprintf("0x%x", severity), "id", id, "message", message)
}
