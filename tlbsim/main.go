// Command tlbsim replays a memory trace through a simulated MMU and reports
// how well the TLB performed.
package main

import "github.com/sarchlab/tlbsim/tlbsim/cmd"

func main() {
	cmd.Execute()
}
