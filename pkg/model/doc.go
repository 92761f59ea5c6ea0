// Package model normalizes parsed plot descriptions into a typed hierarchy.
//
// A description file becomes exactly one [Graph]. A Graph holds one or more
// [Plot] values, each drawn into its own subplot, and every Plot holds one
// or more [Series]. [Build] applies all defaulting rules and resolves axis
// data, so the result is complete and is never modified afterwards.
//
// # Input Shapes
//
// The top level is either a container mapping with a "plots" key:
//
//	title: Calibration
//	share: true        # default true
//	style: ggplot
//	plots:
//	  - title: Run 1
//	    axes: {x: [1, 2, 3], y: [2, 4, 6]}
//
// or a single plot mapping, or a list of plot mappings. Without the
// container the Graph never shares axes and carries no style.
//
// # Axis Values
//
// Each of x and y is one of:
//
//	[1, 2, 3]                          # literal numbers
//	"data.csv:2:1"                     # column 2 of data.csv, skipping 1 line
//	{values: [1, 2, 3], errors: 0.1}   # error bars, here [0.1, 0.2, 0.3]
//
// errors may also be a literal list or a file reference. Relative file
// references are resolved against [Options.BaseDir].
package model
