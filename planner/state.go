package planner

import "fmt"

// The search clones the full train and package tables on every branch,
// so each recursive frame mutates its own snapshot and the caller's
// state stays intact.

// cloneTrain returns a deep copy of t, including its name lists.
func cloneTrain(t *Train) *Train {
	clone := *t
	clone.PackagesToPickUp = append([]string(nil), t.PackagesToPickUp...)
	clone.PackagesPickedUp = append([]string(nil), t.PackagesPickedUp...)
	clone.PackagesDelivered = append([]string(nil), t.PackagesDelivered...)

	return &clone
}

// cloneTrains deep-copies the train table.
func cloneTrains(trains map[string]*Train) map[string]*Train {
	out := make(map[string]*Train, len(trains))
	for name, t := range trains {
		out[name] = cloneTrain(t)
	}

	return out
}

// clonePackages deep-copies the package table.
func clonePackages(packages map[string]*Package) map[string]*Package {
	out := make(map[string]*Package, len(packages))
	for name, p := range packages {
		clone := *p
		out[name] = &clone
	}

	return out
}

// carriedWeight sums the weights of the packages the train is committed
// to or carrying. That sum, subtracted from Capacity, is the remaining
// capacity available for new commitments.
func carriedWeight(t *Train, packages map[string]*Package) (int64, error) {
	var total int64
	for _, lists := range [][]string{t.PackagesToPickUp, t.PackagesPickedUp} {
		for _, name := range lists {
			pkg, ok := packages[name]
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrPackageNotFound, name)
			}
			total += pkg.Weight
		}
	}

	return total, nil
}

// capableTrains returns the names of trains whose remaining capacity
// admits pkg.
func capableTrains(pkg *Package, trains map[string]*Train, packages map[string]*Package) ([]string, error) {
	var capable []string
	for name, t := range trains {
		carried, err := carriedWeight(t, packages)
		if err != nil {
			return nil, err
		}
		if t.Capacity-carried >= pkg.Weight {
			capable = append(capable, name)
		}
	}

	return capable, nil
}

// removeName drops the first occurrence of name from list, in place.
func removeName(list []string, name string) []string {
	for i, candidate := range list {
		if candidate == name {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
