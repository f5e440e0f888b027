package sandbox

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// GraphicsContext shares its device with gogpu ecosystem libraries.
var _ gpucontext.DeviceProvider = (*GraphicsContext)(nil)

// Device returns the context's hal.Device. The context keeps ownership.
func (c *GraphicsContext) Device() gpucontext.Device {
	return c.device
}

// Queue returns the context's hal.Queue.
func (c *GraphicsContext) Queue() gpucontext.Queue {
	return c.queue
}

// Adapter returns the selected Adapter.
func (c *GraphicsContext) Adapter() gpucontext.Adapter {
	return c.adapter
}

// SurfaceFormat returns the configured surface format.
func (c *GraphicsContext) SurfaceFormat() gputypes.TextureFormat {
	return c.config.Format
}

// AdapterInfo reports the adapter name and type for render mode selection
// in libraries such as gg.
func (c *GraphicsContext) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: c.info.Name,
		Type: adapterType(c.info.DeviceType),
	}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
