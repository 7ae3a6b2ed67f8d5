// Command plexus analyzes protein interaction networks.
package main

import "github.com/papapumpkin/plexus/cmd"

func main() {
	cmd.Execute()
}
