// Command multigrid builds a grid from flags or a YAML definition and
// inspects its index ↔ coordinate mapping.
//
//	multigrid describe --extents 2,2,3,5 --fill-start 0.5 --fill-step 0.5
//	multigrid coord 43 --extents 2,2,3,5
//	multigrid index 1,0,2,3 --extents 2,2,3,5
//	multigrid get 1,0,2,3 --file grid.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
