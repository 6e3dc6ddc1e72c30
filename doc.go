// Package lattice contains the core contracts of Lattice, a library for describing
// batch computations as lazy dataflow graphs. This root package defines the types
// which are employed both by plan-building client code and by execution engines
// consuming finished plans, and is an excellent overview of Lattice's key concepts.
//
// Lattice builds plans; it never executes them. Every operation in the dataset
// package returns once its operator node is constructed, and the finished graph,
// rooted at one or more sinks, is handed to an external engine as-is.
package lattice
