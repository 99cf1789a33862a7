// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera defines a perspective view onto the scene. It is a plain value:
// render passes and the picker receive a copy, so nothing done while
// rendering a frame can change what the next pass sees.
type Camera struct {

	// Pos is the location of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the point the camera looks at. Orbit rotates around it.
	Target math32.Vector3

	// UpDir is the world direction that appears up in the view.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height) of the view.
	Aspect float32

	// Near is the distance to the near clipping plane.
	Near float32

	// Far is the distance to the far clipping plane.
	Far float32

	// MinDistance and MaxDistance bound the distance to Target under Zoom.
	MinDistance, MaxDistance float32

	// MaxPolar is the largest angle in radians between UpDir and the
	// Target to Pos vector, which keeps the camera above the ground plane.
	MaxPolar float32
}

// Defaults sets the default lens and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 60
	cm.Aspect = 800.0 / 600.0
	cm.Near = 0.1
	cm.Far = 5000000
	cm.MinDistance = 1
	cm.MaxDistance = 16384
	cm.MaxPolar = math32.Pi/2 - math32.Pi/360
	cm.DefaultPose()
}

// DefaultPose looks at the origin from (0, 500, 500), with Z up.
func (cm *Camera) DefaultPose() {
	cm.Pos = math32.Vec3(0, 500, 500)
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 0, 1)
}

// SetAspectFromSize sets the aspect ratio to match given viewport size.
func (cm *Camera) SetAspectFromSize(sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	cm.Aspect = float32(sz.X) / float32(sz.Y)
}

// Basis returns the unit forward, right and up vectors of the view.
func (cm *Camera) Basis() (fwd, right, up math32.Vector3) {
	fwd = cm.Target.Sub(cm.Pos)
	if fwd.Length() == 0 {
		fwd = math32.Vec3(0, 0, -1)
	}
	fwd = fwd.Normal()
	right = fwd.Cross(cm.UpDir)
	if right.Length() < 1e-6 {
		// looking straight along UpDir: any perpendicular will do
		right = fwd.Cross(math32.Vec3(1, 0, 0))
		if right.Length() < 1e-6 {
			right = fwd.Cross(math32.Vec3(0, 1, 0))
		}
	}
	right = right.Normal()
	up = right.Cross(fwd)
	return
}

// tanHalfFOV is the half-height of the view plane at unit distance.
func (cm *Camera) tanHalfFOV() float32 {
	return math32.Tan(math32.DegToRad(cm.FOV) / 2)
}

// Ray returns the ray from the camera through the given point in
// normalized device coordinates, where x and y are in [-1, 1]
// and +y is up.
func (cm *Camera) Ray(ndc math32.Vector2) math32.Ray {
	fwd, right, up := cm.Basis()
	th := cm.tanHalfFOV()
	dir := fwd.Add(right.MulScalar(ndc.X * th * cm.Aspect)).Add(up.MulScalar(ndc.Y * th))
	return math32.Ray{Origin: cm.Pos, Dir: dir.Normal()}
}

// Project returns the normalized device coordinates and view depth of
// the given world point. It returns false if the point is outside the
// near to far range in front of the camera.
func (cm *Camera) Project(p math32.Vector3) (ndc math32.Vector2, depth float32, ok bool) {
	fwd, right, up := cm.Basis()
	d := p.Sub(cm.Pos)
	depth = d.Dot(fwd)
	if depth < cm.Near || depth > cm.Far {
		return ndc, depth, false
	}
	th := cm.tanHalfFOV()
	ndc.X = d.Dot(right) / (depth * th * cm.Aspect)
	ndc.Y = d.Dot(up) / (depth * th)
	return ndc, depth, true
}

// ProjectedRadius returns the on-screen radius in pixels of a sphere of
// the given world radius at the given view depth, for a viewport of the
// given pixel height.
func (cm *Camera) ProjectedRadius(radius, depth float32, height int) float32 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * cm.tanHalfFOV()) * float32(height) / 2
}

// PixelToNDC converts a pixel position within a viewport of the given
// size into normalized device coordinates.
func PixelToNDC(x, y float32, sz image.Point) math32.Vector2 {
	return math32.Vec2(x/float32(sz.X)*2-1, -(y/float32(sz.Y))*2+1)
}

// NDCToPixel is the inverse of [PixelToNDC].
func NDCToPixel(ndc math32.Vector2, sz image.Point) math32.Vector2 {
	return math32.Vec2((ndc.X+1)/2*float32(sz.X), (1-ndc.Y)/2*float32(sz.Y))
}

// ViewVector is the vector from the target to the camera position.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Orbit moves the camera around the Target by the given angles in
// degrees: delX rotates around UpDir and delY tilts toward or away from
// it. A tilt that would pass MaxPolar or the up pole is dropped.
func (cm *Camera) Orbit(delX, delY float32) {
	off := cm.ViewVector()
	if off.Length() == 0 {
		off = cm.UpDir
	}
	up := cm.UpDir.Normal()
	off = rotateAxis(off, up, math32.DegToRad(delX))
	right := up.Cross(off)
	if right.Length() > 1e-6 {
		tilted := rotateAxis(off, right.Normal(), math32.DegToRad(delY))
		polar := math32.Acos(math32.Clamp(tilted.Normal().Dot(up), -1, 1))
		if polar <= cm.MaxPolar && polar > 1e-3 {
			off = tilted
		}
	}
	cm.Pos = cm.Target.Add(off)
}

// Pan moves both the camera and the Target within the view plane.
func (cm *Camera) Pan(delX, delY float32) {
	_, right, up := cm.Basis()
	td := right.MulScalar(-delX).Add(up.MulScalar(-delY))
	cm.Pos = cm.Pos.Add(td)
	cm.Target = cm.Target.Add(td)
}

// Zoom scales the distance to the Target by (1 + zoomPct), clamped to
// [MinDistance, MaxDistance].
func (cm *Camera) Zoom(zoomPct float32) {
	off := cm.ViewVector()
	dist := off.Length()
	if dist == 0 {
		return
	}
	nd := dist * (1 + zoomPct)
	if cm.MaxDistance > 0 {
		nd = math32.Clamp(nd, cm.MinDistance, cm.MaxDistance)
	}
	cm.Pos = cm.Target.Add(off.MulScalar(nd / dist))
}

// rotateAxis rotates v around the unit axis k by angle radians.
func rotateAxis(v, k math32.Vector3, angle float32) math32.Vector3 {
	sin, cos := math32.Sincos(angle)
	return v.MulScalar(cos).Add(k.Cross(v).MulScalar(sin)).Add(k.MulScalar(k.Dot(v) * (1 - cos)))
}
