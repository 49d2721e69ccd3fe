// Package eikonal implements the single local update shared by every
// solver in package solver: the N-D discretized quadratic
//
//	sum_{k : m_k finite} max(0, T_i - m_k)^2 = h^2 / F_i^2
//
// where m_k is the minimum arrival time among cell i's neighbors along
// dimension k, h is the grid leaf size, and F_i is cell i's velocity.
// Solve treats this as a generalized quadratic A*T^2 + B*T + C = 0 with
// A = number of finite m_k, B = -2*sum(m_k), C = sum(m_k^2) - h^2/F_i^2,
// and returns the larger root. If that root is below the largest m_k it
// used, those largest m_k contribute max(0, T_i - m_k) = 0, so Solve drops
// them and solves again. When the discriminant is negative it falls
// back to the one-dimensional update through the smallest neighbor,
// following the same fallback the teacher's dijkstra package uses for
// degenerate inputs: handle locally, never propagate a NumericError.
package eikonal
