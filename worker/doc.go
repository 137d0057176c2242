// Package worker provides the in-process side of the worker binding
// boundary: a factory-based Registry implementing core.WorkerResolver, and a
// FunctionWorker adapter that turns plain Go functions into capability
// endpoints. Model-backed workers over the Anthropic and OpenAI APIs live in
// the respective subpackages.
package worker
