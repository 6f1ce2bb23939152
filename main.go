package main

import "github.com/pasevin/hubspot-properties-import/cmd"

func main() {
	cmd.Execute()
}
