package planner

import (
	"testing"

	"github.com/katalvlaran/railplan/network"
)

func TestMoveTrain_AlreadyInPlace(t *testing.T) {
	train := &Train{Name: "Q1", CurrentLocation: "A", PackagesToPickUp: []string{"K1"}}
	dest := network.Destination{From: "A", To: "A", CumulativeDistance: 0}

	timeline := []Movement{{StartTime: 0, EndTime: 5, From: "Z", To: "A", Train: "Q1"}}
	extended, pickedUp, delivered, err := moveTrain(train, dest, nil, timeline)
	if err != nil {
		t.Fatal(err)
	}
	if len(extended) != len(timeline) {
		t.Fatalf("timeline grew to %d movements; want unchanged %d", len(extended), len(timeline))
	}
	if len(pickedUp) != 0 || len(delivered) != 0 {
		t.Fatalf("pickedUp=%v delivered=%v; want both empty", pickedUp, delivered)
	}
}

func TestMoveTrain_DirectLeg(t *testing.T) {
	train := &Train{Name: "Q1", CurrentLocation: "A", PackagesToPickUp: []string{"K1"}}
	packages := map[string]*Package{
		"K1": {Name: "K1", From: "A", To: "B", Weight: 5},
	}
	dest := network.Destination{From: "A", To: "B", Distance: 7, CumulativeDistance: 7}

	extended, pickedUp, delivered, err := moveTrain(train, dest, packages, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(extended) != 1 {
		t.Fatalf("got %d movements; want 1", len(extended))
	}

	m := extended[0]
	if m.StartTime != 0 || m.EndTime != 7 || m.From != "A" || m.To != "B" || m.Train != "Q1" {
		t.Fatalf("movement = %+v; want A→B over [0,7] by Q1", m)
	}
	if len(pickedUp) != 1 || pickedUp[0] != "K1" {
		t.Fatalf("pickedUp = %v; want [K1]", pickedUp)
	}
	if len(delivered) != 1 || delivered[0] != "K1" {
		t.Fatalf("delivered = %v; want [K1]", delivered)
	}

	// Pure: the train record itself is untouched.
	if len(train.PackagesToPickUp) != 1 || len(train.PackagesPickedUp) != 0 {
		t.Fatalf("moveTrain mutated the train: %+v", train)
	}
}

func TestMoveTrain_MultiLegChain(t *testing.T) {
	// Route A→C→B→D with legs 10, 20, 10; the carried package offloads
	// at the intermediate stop B, the committed one rides to D.
	train := &Train{
		Name:             "Q1",
		CurrentLocation:  "A",
		PackagesToPickUp: []string{"K2"},
		PackagesPickedUp: []string{"K1"},
	}
	packages := map[string]*Package{
		"K1": {Name: "K1", From: "A", To: "B", Weight: 1},
		"K2": {Name: "K2", From: "A", To: "D", Weight: 1},
	}
	dest := network.Destination{
		From:               "A",
		To:                 "D",
		Distance:           10,
		CumulativeDistance: 40,
		Checkpoints:        []network.Leg{{To: "C", Distance: 10}, {To: "B", Distance: 20}},
	}

	// A prior movement of another train must not shift Q1's clock.
	prior := []Movement{{StartTime: 0, EndTime: 99, From: "X", To: "Y", Train: "Q9"}}

	extended, pickedUp, delivered, err := moveTrain(train, dest, packages, prior)
	if err != nil {
		t.Fatal(err)
	}
	legs := extended[len(prior):]
	if len(legs) != 3 {
		t.Fatalf("got %d new legs; want 3", len(legs))
	}

	type expect struct {
		start, end int64
		from, to   string
	}
	wants := []expect{
		{0, 10, "A", "C"},
		{10, 30, "C", "B"},
		{30, 40, "B", "D"},
	}
	for i, w := range wants {
		leg := legs[i]
		if leg.StartTime != w.start || leg.EndTime != w.end || leg.From != w.from || leg.To != w.to {
			t.Fatalf("leg %d = %+v; want %+v", i, leg, w)
		}
	}

	// Pickups only on the first leg.
	if len(legs[0].PackagesPickedUp) != 1 || legs[0].PackagesPickedUp[0] != "K2" {
		t.Fatalf("first leg pickups = %v; want [K2]", legs[0].PackagesPickedUp)
	}
	if len(legs[1].PackagesPickedUp) != 0 || len(legs[2].PackagesPickedUp) != 0 {
		t.Fatal("later legs must not pick up packages")
	}

	// K1 offloads at B (second arrival), K2 at D (final arrival).
	if len(legs[1].PackagesDelivered) != 1 || legs[1].PackagesDelivered[0] != "K1" {
		t.Fatalf("second leg deliveries = %v; want [K1]", legs[1].PackagesDelivered)
	}
	if len(legs[2].PackagesDelivered) != 1 || legs[2].PackagesDelivered[0] != "K2" {
		t.Fatalf("third leg deliveries = %v; want [K2]", legs[2].PackagesDelivered)
	}

	if len(pickedUp) != 1 || pickedUp[0] != "K2" {
		t.Fatalf("aggregate pickedUp = %v; want [K2]", pickedUp)
	}
	if len(delivered) != 2 {
		t.Fatalf("aggregate delivered = %v; want K1 and K2", delivered)
	}
}

func TestMoveTrain_ChainsFromPreviousMovement(t *testing.T) {
	train := &Train{Name: "Q1", CurrentLocation: "B"}
	dest := network.Destination{From: "B", To: "C", Distance: 10, CumulativeDistance: 10}
	prior := []Movement{{StartTime: 0, EndTime: 30, From: "A", To: "B", Train: "Q1"}}

	extended, _, _, err := moveTrain(train, dest, nil, prior)
	if err != nil {
		t.Fatal(err)
	}
	leg := extended[len(extended)-1]
	if leg.StartTime != 30 || leg.EndTime != 40 {
		t.Fatalf("leg = %+v; want start 30 end 40 (chained)", leg)
	}
}

func TestMoveTrain_UnknownPackage(t *testing.T) {
	train := &Train{Name: "Q1", CurrentLocation: "A", PackagesPickedUp: []string{"ghost"}}
	dest := network.Destination{From: "A", To: "B", Distance: 1, CumulativeDistance: 1}

	_, _, _, err := moveTrain(train, dest, map[string]*Package{}, nil)
	if err == nil {
		t.Fatal("expected ErrPackageNotFound for a package missing from the table")
	}
}
