// Command bentenplot renders the synchrotron characterization figures
// of the fuel-cell catalyst standard-sample study. Every subcommand
// reproduces one figure; flags default to the study's data files and
// parameters so a bare invocation regenerates the published plot.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
