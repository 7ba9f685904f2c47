// Package sdfseed builds fmm seed data — indices, distances, and normals —
// from an implicit surface expressed as a github.com/deadsy/sdfx
// sdf.SDF3. It is the bridge between a CAD-style solid definition and the
// narrow-band seeding contract the fmm package expects: every grid cell
// whose SDF value changes sign across an axis-aligned edge is a candidate
// interface cell, seeded at its own (signed) SDF value and the SDF's
// central-difference gradient, normalized to a unit normal.
package sdfseed
