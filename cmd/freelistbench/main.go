// Command freelistbench populates, mutates and sorts sequences and reports
// hardware counter deltas for each workload.
package main

func main() {
	execute()
}
