//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// AffineLogForward computes y[i] = baseScale * log(scale*x[i] + shift)
// in one fused GPU pass over the buffer.
func (b *Backend) AffineLogForward(y, x []float32, scale, shift, baseScale float32) error {
	if len(y) != len(x) {
		return fmt.Errorf("webgpu: affineLogForward: length mismatch: %d vs %d", len(y), len(x))
	}
	if len(x) == 0 {
		return nil
	}

	shader := b.compileShader("affineLogForward", affineLogForwardShader)
	pipeline := b.getOrCreatePipeline("affineLogForward", shader)

	resultSize := uint64(len(x)) * 4

	bufferInput := b.createBuffer(f32Bytes(x), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	bufferParams := b.createUniformBuffer(packParams(len(x), scale, shift, baseScale))
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, resultSize),
		wgpu.BufferBindingEntry(1, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	b.dispatch(pipeline, bindGroup, len(x))

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return err
	}
	copy(f32Bytes(y), resultData)
	return nil
}

// AffineLogBackward computes dx[i] = dy[i] * numScale / (scale*x[i] + shift)
// in one fused GPU pass over the buffer.
func (b *Backend) AffineLogBackward(dx, dy, x []float32, scale, shift, numScale float32) error {
	if len(dx) != len(x) || len(dy) != len(x) {
		return fmt.Errorf("webgpu: affineLogBackward: length mismatch: dx=%d dy=%d x=%d",
			len(dx), len(dy), len(x))
	}
	if len(x) == 0 {
		return nil
	}

	shader := b.compileShader("affineLogBackward", affineLogBackwardShader)
	pipeline := b.getOrCreatePipeline("affineLogBackward", shader)

	resultSize := uint64(len(x)) * 4

	bufferGradOut := b.createBuffer(f32Bytes(dy), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferGradOut.Release()

	bufferInput := b.createBuffer(f32Bytes(x), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	bufferParams := b.createUniformBuffer(packParams(len(x), scale, shift, numScale))
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferGradOut, 0, resultSize),
		wgpu.BufferBindingEntry(1, bufferInput, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	b.dispatch(pipeline, bindGroup, len(x))

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return err
	}
	copy(f32Bytes(dx), resultData)
	return nil
}

// dispatch runs one compute pass with ceil(n/workgroupSize) workgroups.
func (b *Backend) dispatch(pipeline *wgpu.ComputePipeline, bindGroup *wgpu.BindGroup, n int) {
	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((n + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)
}

// packParams packs the uniform block: element count plus three kernel scalars.
func packParams(n int, a, bv, c float32) []byte {
	params := make([]byte, 16)
	//nolint:gosec // G115: element count is non-negative
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(a))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(bv))
	binary.LittleEndian.PutUint32(params[12:16], math.Float32bits(c))
	return params
}

// f32Bytes reinterprets a float32 slice as its backing bytes without copying.
func f32Bytes(s []float32) []byte {
	if len(s) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy conversion
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
}
