// Package eikonal implements the upwind discretization of the Eikonal
// equation |grad T| * F = 1 used by the Fast Marching Method: given a
// target cell and its frozen axis-neighbors, assemble the quadratic
// a*x^2 + b*x + c = 0 and return its larger real root as the cell's trial
// arrival time.
package eikonal
