package network_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/railplan/network"
)

func TestAddEdge_Validation(t *testing.T) {
	g := network.NewGraph()
	if err := g.AddEdge("", "B", 1); !errors.Is(err, network.ErrEmptyStation) {
		t.Fatalf("empty from: got %v; want ErrEmptyStation", err)
	}
	if err := g.AddEdge("A", "", 1); !errors.Is(err, network.ErrEmptyStation) {
		t.Fatalf("empty to: got %v; want ErrEmptyStation", err)
	}
	if err := g.AddEdge("A", "B", -3); !errors.Is(err, network.ErrNegativeDistance) {
		t.Fatalf("negative distance: got %v; want ErrNegativeDistance", err)
	}
}

func TestAddEdge_Undirected(t *testing.T) {
	g := network.NewGraph()
	if err := g.AddEdge("A", "B", 30); err != nil {
		t.Fatal(err)
	}

	// Each endpoint must carry one leg toward the other.
	legsA, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(legsA) != 1 || legsA[0].To != "B" || legsA[0].Distance != 30 {
		t.Fatalf("Neighbors(A) = %v; want [{B 30}]", legsA)
	}
	legsB, err := g.Neighbors("B")
	if err != nil {
		t.Fatal(err)
	}
	if len(legsB) != 1 || legsB[0].To != "A" || legsB[0].Distance != 30 {
		t.Fatalf("Neighbors(B) = %v; want [{A 30}]", legsB)
	}
}

func TestNeighbors_Unknown(t *testing.T) {
	g := network.NewGraph()
	if _, err := g.Neighbors("Z"); !errors.Is(err, network.ErrStationNotFound) {
		t.Fatalf("got %v; want ErrStationNotFound", err)
	}
}

func TestStations_SortedAndMultiEdgePreserved(t *testing.T) {
	g := network.NewGraph()
	_ = g.AddEdge("C", "A", 1)
	_ = g.AddEdge("B", "A", 2)
	_ = g.AddEdge("B", "A", 7) // parallel edge, kept

	got := g.Stations()
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Stations() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Stations() = %v; want %v", got, want)
		}
	}

	legs, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(legs) != 3 {
		t.Fatalf("Neighbors(A) has %d legs; want 3 (parallel edges preserved)", len(legs))
	}
}
