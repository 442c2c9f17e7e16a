// Package planner defines the types and the Problem contract shared by
// every search engine in this module (grid, lpastar, dstarlite,
// agent, baseline). Nothing in here performs a search; it only fixes
// the vocabulary the engines are built against.
package planner
