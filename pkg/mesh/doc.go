// Package mesh flattens transformed patches into an indexed patch mesh.
//
// Control points shared by neighbouring patches are stored once. Equality is
// decided on a canonical [Key]: each coordinate rounded to [DefaultPrecision]
// decimal digits, or taken as-is once its magnitude is too large for that
// rounding to change it. Two points that differ only beyond that digit collapse to
// a single entry, and the stored point is the first one seen, unrounded.
//
// Indices are assigned in first-occurrence order, walking patches in
// declaration order and each patch's 16 points in control-net order. The
// result is fully determined by the input order.
package mesh
