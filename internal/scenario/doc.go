// Package scenario loads HCL files describing a Life run: the grid size,
// how it is seeded, how many generations to run and which patterns to stamp
// onto it.
//
//	grid {
//	  width  = 64
//	  height = 48
//	}
//
//	seed {
//	  mode  = "cells"
//	  value = 7
//	  density = 0.2
//	}
//
//	generations = 100
//
//	pattern "glider" {
//	  row = 1
//	  col = 1
//	}
//
//	pattern "bar" {
//	  row   = floor(grid_height / 2)
//	  col   = floor(grid_width / 2) - 5
//	  cells = ["##########"]
//	}
//
// Pattern positions are evaluated with grid_width and grid_height in scope
// along with the floor, ceil, min and max functions. A pattern without cells
// refers to a built-in pattern by its label. Without a seed block the grid
// starts empty. Without generations the host picks the run length; zero
// asks for a run that lasts until it is interrupted.
package scenario
