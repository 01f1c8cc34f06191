// Package slicer implements the measure-value slicer visual.
//
// Allowed here:
// - the view-model build pass (data view -> grouping + settings)
// - the visual's selection state machine and checkbox-row projection
//
// Not allowed here:
// - query execution, persistence, or any knowledge of where data views come
// from (that is the host's side of the contract)
package slicer
