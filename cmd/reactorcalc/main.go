// reactorcalc computes boiler and fission reactor layouts from the command
// line, writes sweep tables and serves the optimizers over HTTP.
//
// Build:
//   go build -o reactorcalc ./cmd/reactorcalc
//
// Examples:
//   reactorcalc boiler 5 4 6 --mode sodium
//   reactorcalc sweep --format csv,xlsx,pdf --out tables
//   reactorcalc serve --addr :8080

package main

import "github.com/piwi3910/ReactorCalc/internal/cli"

func main() {
	cli.Execute()
}
