package grid

import "fmt"

// Collision records one overlapping pair. A is the candidate (or the
// lower-indexed box in a batch scan), B the box it overlaps, and Message a
// human-readable description naming both titles.
type Collision struct {
	A       Box
	B       Box
	Message string
}

// CollisionResult is the outcome of a collision scan. A fresh result is
// produced per call and never mutated afterwards.
type CollisionResult struct {
	Collisions []Collision
}

// HasCollisions reports whether the scan found any overlapping pair.
func (r CollisionResult) HasCollisions() bool { return len(r.Collisions) > 0 }

// DetectCollisions scans all pairs (i < j, i ascending then j ascending) and
// reports every overlap. Edge-touching boxes are not overlaps; see
// [Box.Overlaps].
func DetectCollisions(boxes []Box) CollisionResult {
	var found []Collision
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				found = append(found, collisionBetween(boxes[i], boxes[j]))
			}
		}
	}
	return CollisionResult{Collisions: found}
}

// WouldCollide checks a candidate box against existing boxes, skipping the
// box whose ID equals excludeID (pass "" to skip nothing). Excluding lets a
// box being moved or resized ignore its own committed position.
//
// This runs on every pointer-move tick, so it is a single linear scan that
// allocates only when collisions are found.
func WouldCollide(candidate Box, boxes []Box, excludeID string) CollisionResult {
	var found []Collision
	for _, b := range boxes {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b) {
			found = append(found, collisionBetween(candidate, b))
		}
	}
	return CollisionResult{Collisions: found}
}

func collisionBetween(a, b Box) Collision {
	return Collision{
		A:       a,
		B:       b,
		Message: fmt.Sprintf("boxes %q and %q overlap", a.Title, b.Title),
	}
}
