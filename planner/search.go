package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/railplan/network"
)

// Planner owns the station graph, the initial fleet and package tables,
// and the memoization cache shared by every frame of one search.
type Planner struct {
	graph    *network.Graph
	trains   map[string]*Train
	packages map[string]*Package
	cache    map[string][]Movement
	options  Options
}

// New validates the problem and builds a Planner.
//
// Validation (in order): edges via network.AddEdge guards; then each
// train (name non-empty and unique, capacity non-negative, start present
// in the edge list); then each package (name non-empty and unique,
// weight non-negative, both endpoints present in the edge list).
func New(problem Problem, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	graph := network.NewGraph()
	for _, e := range problem.Edges {
		if err := graph.AddEdge(e.From, e.To, e.Distance); err != nil {
			return nil, fmt.Errorf("edge %q: %w", e.Name, err)
		}
	}

	trains := make(map[string]*Train, len(problem.Trains))
	for _, spec := range problem.Trains {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: train", ErrEmptyName)
		}
		if _, exists := trains[spec.Name]; exists {
			return nil, fmt.Errorf("%w: train %q", ErrDuplicateName, spec.Name)
		}
		if spec.Capacity < 0 {
			return nil, fmt.Errorf("%w: train %q", ErrNegativeCapacity, spec.Name)
		}
		if !graph.HasStation(spec.Start) {
			return nil, fmt.Errorf("%w: train %q starts at %q", ErrUnknownStation, spec.Name, spec.Start)
		}
		trains[spec.Name] = &Train{
			Name:            spec.Name,
			Start:           spec.Start,
			CurrentLocation: spec.Start,
			Capacity:        spec.Capacity,
		}
	}

	packages := make(map[string]*Package, len(problem.Packages))
	for _, spec := range problem.Packages {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: package", ErrEmptyName)
		}
		if _, exists := packages[spec.Name]; exists {
			return nil, fmt.Errorf("%w: package %q", ErrDuplicateName, spec.Name)
		}
		if spec.Weight < 0 {
			return nil, fmt.Errorf("%w: package %q", ErrNegativeWeight, spec.Name)
		}
		if !graph.HasStation(spec.From) {
			return nil, fmt.Errorf("%w: package %q origin %q", ErrUnknownStation, spec.Name, spec.From)
		}
		if !graph.HasStation(spec.To) {
			return nil, fmt.Errorf("%w: package %q destination %q", ErrUnknownStation, spec.Name, spec.To)
		}
		packages[spec.Name] = &Package{
			Name:   spec.Name,
			From:   spec.From,
			To:     spec.To,
			Weight: spec.Weight,
		}
	}

	return &Planner{
		graph:    graph,
		trains:   trains,
		packages: packages,
		cache:    make(map[string][]Movement),
		options:  cfg,
	}, nil
}

// Solve runs the search from the initial state and returns the best
// movement list found, sorted by (train name, start time).
func (pl *Planner) Solve() ([]Movement, error) {
	log := pl.options.Logger
	started := time.Now()
	log.Info().
		Int("trains", len(pl.trains)).
		Int("packages", len(pl.packages)).
		Msg("planning started")

	movements, err := pl.calculate(cloneTrains(pl.trains), clonePackages(pl.packages), nil)
	if err != nil {
		log.Error().Err(err).Msg("planning failed")

		return nil, err
	}

	log.Info().
		Int("movements", len(movements)).
		Int64("makespan", longestEndTime(movements)).
		Int("trains_used", distinctTrains(movements)).
		Dur("elapsed", time.Since(started)).
		Msg("planning finished")

	return movements, nil
}

// candidate is one branch of the search: send a train toward a package,
// either to commit to picking it up or to complete an existing
// commitment (travel to its origin or destination).
type candidate struct {
	train  string
	pkg    string
	pickup bool
}

// calculate is the recursive branch-and-bound core. It enumerates every
// viable candidate from the given state, expands each on a cloned
// snapshot, and keeps the lexicographically best complete plan
// (makespan, then distinct trains used).
func (pl *Planner) calculate(trains map[string]*Train, packages map[string]*Package, movements []Movement) ([]Movement, error) {
	rec := pl.options.Recorder

	// 1) Memoization check.
	key := fingerprint(trains, packages)
	if cached, ok := pl.cache[key]; ok {
		rec.CacheHit()

		return cached, nil
	}
	rec.CacheMiss()

	// 2) Candidate generation.
	candidates, err := pl.collectCandidates(trains, packages)
	if err != nil {
		return nil, err
	}

	// 3) Terminal case: no candidates means either a complete plan or a
	//    dead end with undelivered packages.
	if len(candidates) == 0 {
		var undelivered []string
		for name, pkg := range packages {
			if pkg.DeliveredBy == "" {
				undelivered = append(undelivered, name)
			}
		}
		if len(undelivered) > 0 {
			sort.Strings(undelivered)

			return nil, fmt.Errorf("%w: undelivered %v", ErrNoSolution, undelivered)
		}

		return movements, nil
	}

	// 4) Expand each candidate on its own snapshot; keep the best plan.
	var (
		best        []Movement
		minMakespan int64 = math.MaxInt64
		minTrains         = math.MaxInt
	)
	for _, c := range candidates {
		plan, expandErr := pl.expand(c, trains, packages, movements)
		if expandErr != nil {
			return nil, expandErr
		}
		rec.NodeExpanded()

		makespan := longestEndTime(plan)
		used := distinctTrains(plan)
		if makespan < minMakespan || (makespan == minMakespan && used < minTrains) {
			minMakespan = makespan
			minTrains = used
			best = plan
			rec.IncumbentUpdated()
			pl.options.Logger.Debug().
				Int64("makespan", makespan).
				Int("trains_used", used).
				Msg("incumbent updated")
		}
	}

	// 5) Canonical order, then memoize under the state fingerprint.
	sortMovements(best)
	pl.cache[key] = best

	return best, nil
}

// collectCandidates builds the deterministic expansion list:
// completions of existing commitments first (pickup=false), then new
// pickup commitments for free packages and capable trains, ordered by
// train name and package name.
func (pl *Planner) collectCandidates(trains map[string]*Train, packages map[string]*Package) ([]candidate, error) {
	var candidates []candidate

	for name, pkg := range packages {
		if pkg.ToBePickedUpBy != "" || pkg.PickedUpBy != "" || pkg.DeliveredBy != "" {
			continue
		}
		capable, err := capableTrains(pkg, trains, packages)
		if err != nil {
			return nil, err
		}
		for _, trainName := range capable {
			candidates = append(candidates, candidate{train: trainName, pkg: name, pickup: true})
		}
	}

	for name, t := range trains {
		for _, pkgName := range t.PackagesToPickUp {
			candidates = append(candidates, candidate{train: name, pkg: pkgName})
		}
		for _, pkgName := range t.PackagesPickedUp {
			candidates = append(candidates, candidate{train: name, pkg: pkgName})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.pickup != b.pickup {
			return !a.pickup
		}
		if a.train != b.train {
			return a.train < b.train
		}

		return a.pkg < b.pkg
	})

	return candidates, nil
}

// expand applies one candidate to a cloned snapshot and recurses.
//
// The train travels to the package origin (pickup commitment) or to the
// package destination (completion). En-route effects reported by the
// synthesizer (loads at departure, offloads at arrivals) are folded
// into the snapshot before recursing.
func (pl *Planner) expand(c candidate, trains map[string]*Train, packages map[string]*Package, movements []Movement) ([]Movement, error) {
	newTrains := cloneTrains(trains)
	newPackages := clonePackages(packages)

	train, ok := newTrains[c.train]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTrainNotFound, c.train)
	}
	pkg, ok := newPackages[c.pkg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, c.pkg)
	}

	target := pkg.To
	if c.pickup {
		target = pkg.From
	}
	dest, err := pl.graph.Destination(train.CurrentLocation, target)
	if err != nil {
		return nil, fmt.Errorf("routing %q: %w", train.Name, err)
	}

	newMovements, pickedUp, delivered, err := moveTrain(train, dest, newPackages, movements)
	if err != nil {
		return nil, err
	}

	if dest.CumulativeDistance > 0 {
		train.CurrentLocation = dest.To
		train.TotalDistance += dest.CumulativeDistance
	}

	if c.pickup {
		train.PackagesToPickUp = append(train.PackagesToPickUp, pkg.Name)
		pkg.ToBePickedUpBy = train.Name
	}

	for _, name := range pickedUp {
		train.PackagesToPickUp = removeName(train.PackagesToPickUp, name)
		train.PackagesPickedUp = append(train.PackagesPickedUp, name)
		loaded, found := newPackages[name]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, name)
		}
		loaded.PickedUpBy = train.Name
	}

	for _, name := range delivered {
		train.PackagesPickedUp = removeName(train.PackagesPickedUp, name)
		train.PackagesDelivered = append(train.PackagesDelivered, name)
		offloaded, found := newPackages[name]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, name)
		}
		offloaded.DeliveredBy = train.Name
	}

	return pl.calculate(newTrains, newPackages, newMovements)
}

// longestEndTime returns the makespan of a plan: the maximum end time
// across its movements, or 0 for an empty plan.
func longestEndTime(movements []Movement) int64 {
	var longest int64
	for _, m := range movements {
		if m.EndTime > longest {
			longest = m.EndTime
		}
	}

	return longest
}

// distinctTrains counts the trains appearing in a plan.
func distinctTrains(movements []Movement) int {
	seen := make(map[string]struct{}, len(movements))
	for _, m := range movements {
		seen[m.Train] = struct{}{}
	}

	return len(seen)
}

// sortMovements orders a plan by (train name, start time).
func sortMovements(movements []Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		if movements[i].Train != movements[j].Train {
			return movements[i].Train < movements[j].Train
		}

		return movements[i].StartTime < movements[j].StartTime
	})
}
