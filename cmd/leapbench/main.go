// Command leapbench benchmarks four leap-year determination techniques
// against each other and prints the timing results as a table.
package main

func main() {
	Execute()
}
