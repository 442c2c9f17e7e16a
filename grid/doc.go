// Package grid provides CostField, the (g, rhs) cost-pair storage
// shared by the lpastar and dstarlite engines, plus fixed-order
// bounds-checked neighbour enumeration over a rectangular grid.
//
// A cell's pair is locally consistent when g == rhs, overconsistent
// when g > rhs (a cost decrease needs to propagate outward), and
// underconsistent when g < rhs (a cost increase needs to propagate
// outward). CostField itself only stores the pair; recognizing which
// regime a cell is in, and what to do about it, is the engines' job.
package grid
