package planner

import (
	"fmt"

	"github.com/katalvlaran/railplan/network"
)

// moveTrain synthesizes the movements of train traveling the route
// described by dest, and appends them to the timeline.
//
// The synthesizer is pure: it mutates neither the train nor the package
// table, and the incoming timeline is copied before extension. It
// returns the extended timeline together with the names of the packages
// loaded at departure and the names offloaded along the way.
//
// Rules:
//   - The segment starts when the train's previous movement ends, or at
//     time 0 if the train has not moved yet.
//   - A zero-length route (train already at dest.To) leaves the
//     timeline unchanged.
//   - Everything in train.PackagesToPickUp is loaded at the station the
//     first leg departs from; later legs load nothing.
//   - On each arrival, every package the train is committed to or
//     carrying whose destination matches that station is offloaded.
func moveTrain(train *Train, dest network.Destination, packages map[string]*Package, movements []Movement) ([]Movement, []string, []string, error) {
	// 1) The new segment begins where the train's chain left off.
	var startTime int64
	for _, m := range movements {
		if m.Train == train.Name {
			startTime = m.EndTime
		}
	}

	// 2) Nothing to emit when the train is already in place.
	if dest.CumulativeDistance == 0 {
		return movements, nil, nil, nil
	}

	checkpoints := dest.Checkpoints
	extended := make([]Movement, len(movements), len(movements)+len(checkpoints)+1)
	copy(extended, movements)

	// 3) First leg: departure loads every committed package; arrival is
	//    the first checkpoint, or dest.To on a direct route.
	pickedUp := append([]string(nil), train.PackagesToPickUp...)

	to := dest.To
	legDistance := dest.Distance
	if len(checkpoints) > 0 {
		to = checkpoints[0].To
		legDistance = checkpoints[0].Distance
	}

	delivered, err := packagesBoundFor(train, packages, to)
	if err != nil {
		return nil, nil, nil, err
	}

	endTime := startTime + legDistance
	extended = append(extended, Movement{
		StartTime:         startTime,
		EndTime:           endTime,
		From:              dest.From,
		To:                to,
		Train:             train.Name,
		PackagesPickedUp:  pickedUp,
		PackagesDelivered: delivered,
	})
	allDelivered := append([]string(nil), delivered...)

	// 4) One further leg per checkpoint, chaining start times.
	for i, checkpoint := range checkpoints {
		to = dest.To
		legDistance = dest.Distance
		if i < len(checkpoints)-1 {
			to = checkpoints[i+1].To
			legDistance = checkpoints[i+1].Distance
		}

		delivered, err = packagesBoundFor(train, packages, to)
		if err != nil {
			return nil, nil, nil, err
		}

		startTime = endTime
		endTime = startTime + legDistance
		extended = append(extended, Movement{
			StartTime:         startTime,
			EndTime:           endTime,
			From:              checkpoint.To,
			To:                to,
			Train:             train.Name,
			PackagesDelivered: delivered,
		})
		allDelivered = append(allDelivered, delivered...)
	}

	return extended, pickedUp, allDelivered, nil
}

// packagesBoundFor returns the names of the packages train is committed
// to or carrying whose destination is station.
func packagesBoundFor(train *Train, packages map[string]*Package, station string) ([]string, error) {
	var bound []string
	for _, lists := range [][]string{train.PackagesToPickUp, train.PackagesPickedUp} {
		for _, name := range lists {
			pkg, ok := packages[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, name)
			}
			if pkg.To == station {
				bound = append(bound, name)
			}
		}
	}

	return bound, nil
}
