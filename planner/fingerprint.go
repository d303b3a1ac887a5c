package planner

import (
	"sort"
	"strings"
)

// Fragment tags keep the four sections of a fingerprint from colliding
// even when their pair lists are empty.
const (
	tagTrainLocations = "train_locations"
	tagToBePickedUp   = "packages_to_be_picked_up"
	tagPickedUp       = "packages_picked_up"
	tagDelivered      = "packages_delivered"
)

// fingerprint renders the planning-relevant state as a canonical string
// key for memoization. Two states that agree on train locations and
// package assignments produce the same key, regardless of movement
// history or accumulated distances. The key is deliberately coarse, so
// memoized sub-plans are reused across differing prefixes.
//
// Layout: four fragments joined by ";". Each fragment is its literal
// tag followed by ",name:value" pairs sorted lexicographically by name.
// The three package fragments keep only pairs with a non-empty
// assignment.
func fingerprint(trains map[string]*Train, packages map[string]*Package) string {
	locations := make([][2]string, 0, len(trains))
	for name, t := range trains {
		locations = append(locations, [2]string{name, t.CurrentLocation})
	}

	toBePickedUp := make([][2]string, 0, len(packages))
	pickedUp := make([][2]string, 0, len(packages))
	delivered := make([][2]string, 0, len(packages))
	for name, p := range packages {
		if p.ToBePickedUpBy != "" {
			toBePickedUp = append(toBePickedUp, [2]string{name, p.ToBePickedUpBy})
		}
		if p.PickedUpBy != "" {
			pickedUp = append(pickedUp, [2]string{name, p.PickedUpBy})
		}
		if p.DeliveredBy != "" {
			delivered = append(delivered, [2]string{name, p.DeliveredBy})
		}
	}

	var b strings.Builder
	writeFragment(&b, tagTrainLocations, locations)
	b.WriteByte(';')
	writeFragment(&b, tagToBePickedUp, toBePickedUp)
	b.WriteByte(';')
	writeFragment(&b, tagPickedUp, pickedUp)
	b.WriteByte(';')
	writeFragment(&b, tagDelivered, delivered)

	return b.String()
}

// writeFragment appends tag followed by ",name:value" pairs sorted by
// name.
func writeFragment(b *strings.Builder, tag string, pairs [][2]string) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	b.WriteString(tag)
	for _, pair := range pairs {
		b.WriteByte(',')
		b.WriteString(pair[0])
		b.WriteByte(':')
		b.WriteString(pair[1])
	}
}
