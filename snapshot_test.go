package symexpr

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestRenderer_Snapshots pins the exact rendering of a spread of inputs,
// so accidental changes to parenthesization, spacing or canonical
// ordering show up as snapshot diffs.
func TestRenderer_Snapshots(t *testing.T) {
	inputs := []string{
		"x + y + z",
		"z + y + x",
		"x - (y + z)",
		"x - (y - z)",
		"(x + y)*(x - y)",
		"x/(y + z)",
		"2*x + 3*y - 4*z",
		"-(x + y)*z",
		"x**2 + 2*x + 1",
		"sin(x)**2 + cos(x)**2",
		"abs(-x) + abs(x)",
		"exp(log(x))",
		"theta[0]*cos(phi) + theta[1]*sin(phi)",
		"1.5 + 2.5i",
		"x/y/z",
		"x**y**z",
		"-x**2 + x**-2",
	}

	for _, input := range inputs {
		p, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		snaps.MatchSnapshot(t, input, p.String())
	}
}

// TestDerivative_Snapshots pins derivative renderings end to end.
func TestDerivative_Snapshots(t *testing.T) {
	inputs := []string{
		"x**3",
		"sin(x)*cos(x)",
		"exp(x*x)",
		"log(x + 1)",
		"x/y",
		"atan(x)",
	}

	for _, input := range inputs {
		p, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		snaps.MatchSnapshot(t, "d/dx "+input, p.Derivative("x").String())
	}
}
