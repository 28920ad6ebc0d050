package curve

import (
	"math/big"
	"testing"
)

func TestNegateIdentity(t *testing.T) {
	c := Default
	g := c.Generator()
	sum := c.Add(g, c.Negate(g))
	if !sum.Equal(Infinity()) {
		t.Fatalf("P + (-P) should be infinity, got %+v", sum)
	}
}

func TestAddInfinityIsIdentity(t *testing.T) {
	c := Default
	g := c.Generator()
	if !c.Add(g, Infinity()).Equal(g) {
		t.Fatal("P + infinity should equal P")
	}
	if !c.Add(Infinity(), g).Equal(g) {
		t.Fatal("infinity + P should equal P")
	}
}

func TestMulZeroIsInfinity(t *testing.T) {
	c := Default
	g := c.Generator()
	if !c.Mul(g, big.NewInt(0)).Equal(Infinity()) {
		t.Fatal("0*P should be infinity")
	}
}

func TestDoubleMatchesMulByTwo(t *testing.T) {
	c := Default
	g := c.Generator()

	for _, k := range []int64{1, 2, 3, 5, 17, 100} {
		mk := c.Mul(g, big.NewInt(k))
		doubled := c.Double(mk)
		mul2k := c.Mul(g, big.NewInt(2*k))
		if !doubled.Equal(mul2k) {
			t.Fatalf("2*(k*G) != (2k)*G for k=%d", k)
		}
	}
}

func TestMulIsAdditive(t *testing.T) {
	c := Default
	g := c.Generator()

	a := c.Mul(g, big.NewInt(7))
	b := c.Mul(g, big.NewInt(11))
	sum := c.Add(a, b)
	expected := c.Mul(g, big.NewInt(18))
	if !sum.Equal(expected) {
		t.Fatal("7G + 11G should equal 18G")
	}
}

func TestMulNegativeScalarNegatesResult(t *testing.T) {
	c := Default
	g := c.Generator()

	for _, k := range []int64{1, 2, 17, 100} {
		neg := c.Mul(g, big.NewInt(-k))
		want := c.Negate(c.Mul(g, big.NewInt(k)))
		if !neg.Equal(want) {
			t.Fatalf("(-%d)*G should equal -(%d*G)", k, k)
		}
	}
}

func TestEqualityStructural(t *testing.T) {
	if !Infinity().Equal(Infinity()) {
		t.Fatal("infinity should equal infinity")
	}
	g := Default.Generator()
	if g.Equal(Infinity()) {
		t.Fatal("generator should not equal infinity")
	}
}
