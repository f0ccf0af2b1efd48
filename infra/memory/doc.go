// Package memory provides the primitives for object reuse on the matching
// path: a typed pool and a fixed-size recycle ring. Order nodes churn fast
// under load; recycling them keeps the matcher off the allocator.
package memory
