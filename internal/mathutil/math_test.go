package mathutil

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("normalized length = %v, want 1", v.Len())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Fatalf("zero vector should normalize to zero")
	}
}

func TestMat4MulIdentity(t *testing.T) {
	id := Mat4Identity()
	m := LookAt(Vec3{0, 0, 3}, Vec3{}, Vec3{0, 1, 0})
	if Mat4Mul(id, m) != m {
		t.Fatalf("identity*m mismatch")
	}
	if Mat4Mul(m, id) != m {
		t.Fatalf("m*identity mismatch")
	}
}

func TestLookAtAxes(t *testing.T) {
	// Camera on +Z looking at origin: view space matches world axes with
	// depth along -Z.
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	p := m.MulPoint(Vec3{1, 2, 0})
	want := Vec3{1, 2, -5}
	for i := range p {
		if math.Abs(p[i]-want[i]) > 1e-12 {
			t.Fatalf("MulPoint = %v, want %v", p, want)
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(Deg2Rad(45), 1, 0.1, 500)

	ndcZ := func(z float64) float64 {
		c := proj.MulVec4(Vec4{0, 0, z, 1})
		return c[2] / c[3]
	}

	if got := ndcZ(-0.1); math.Abs(got-(-1)) > 1e-9 {
		t.Fatalf("near plane maps to %v, want -1", got)
	}
	if got := ndcZ(-500); math.Abs(got-1) > 1e-9 {
		t.Fatalf("far plane maps to %v, want 1", got)
	}
}

func TestRotYQuarterTurn(t *testing.T) {
	m := RotY(Deg2Rad(90))
	p := m.MulVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	for i := range p {
		if math.Abs(p[i]-want[i]) > 1e-12 {
			t.Fatalf("RotY(90)*(1,0,0) = %v, want %v", p, want)
		}
	}
}
