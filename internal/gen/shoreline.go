package gen

import (
	"strata/internal/core"
	"strata/internal/world"
)

// computeShoreline fills DistanceToWater for land near water and
// DistanceToLand for lake cells near a shore. Both are cardinal BFS fields
// seeded at 0 on the cells that touch the other medium; cells beyond the
// limits keep -1. It returns how many cells received each distance.
func computeShoreline(w *world.World, waterLimit, landLimit int) (nearWater, nearLand int) {
	g := w.Grid()
	for i := range w.DistanceToWater {
		w.DistanceToWater[i] = -1
		w.DistanceToLand[i] = -1
	}
	isWater := func(i int) bool { return w.Water(i) }
	isLand := func(i int) bool { return !w.Water(i) }

	var seeds []int
	for i := 0; i < g.Len(); i++ {
		if isLand(i) && touches(g, i, isWater, false) {
			seeds = append(seeds, i)
		}
	}
	nearWater = distanceField(g, w.DistanceToWater, seeds, waterLimit-1, isLand)

	seeds = seeds[:0]
	for i := 0; i < g.Len(); i++ {
		if w.Lake[i] && touches(g, i, isLand, true) {
			seeds = append(seeds, i)
		}
	}
	nearLand = distanceField(g, w.DistanceToLand, seeds, landLimit, func(i int) bool { return w.Lake[i] })
	return nearWater, nearLand
}

// touches reports whether any 8-neighbor of i satisfies pred. When edge is
// set, the top and bottom map edges count as a match.
func touches(g core.Grid, i int, pred func(int) bool, edge bool) bool {
	x, y := g.Coord(i)
	for k := 0; k < 8; k++ {
		j, ok := g.Neighbor(x, y, dx8[k], dy8[k])
		if !ok {
			if edge {
				return true
			}
			continue
		}
		if pred(j) {
			return true
		}
	}
	return false
}

// distanceField runs a multi-source cardinal BFS from seeds through cells
// accepted by pass, stopping expansion at limit.
func distanceField(g core.Grid, dist []int16, seeds []int, limit int, pass func(int) bool) int {
	if limit < 0 {
		return 0
	}
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		dist[s] = 0
		queue = append(queue, s)
	}
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		d := dist[i]
		if int(d) >= limit {
			continue
		}
		x, y := g.Coord(i)
		for k := 0; k < 4; k++ {
			j, ok := g.Neighbor(x, y, core.DX4[k], core.DY4[k])
			if ok && dist[j] == -1 && pass(j) {
				dist[j] = d + 1
				queue = append(queue, j)
			}
		}
	}
	return len(queue)
}
