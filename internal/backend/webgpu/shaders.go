//go:build windows

// Package webgpu provides embedded WGSL compute shaders for the fused kernels.
package webgpu

// WGSL compute shaders for the affine-log transform.
// Using string constants instead of embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// affineLogForwardShader computes the fused forward transform:
// result = base_scale * log(scale * x + shift).
const affineLogForwardShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    scale: f32,
    shift: f32,
    base_scale: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = params.base_scale * log(params.scale * input[idx] + params.shift);
    }
}
`

// affineLogBackwardShader computes the fused chain rule:
// result = dy * num_scale / (scale * x + shift).
const affineLogBackwardShader = `
@group(0) @binding(0) var<storage, read> grad_out: array<f32>;
@group(0) @binding(1) var<storage, read> input: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    scale: f32,
    shift: f32,
    num_scale: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = grad_out[idx] * params.num_scale / (params.scale * input[idx] + params.shift);
    }
}
`
