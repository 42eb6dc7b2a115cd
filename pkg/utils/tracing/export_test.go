package tracing

var SamplerForTest = sampler
