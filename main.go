package main

import "github.com/wrenhale/letssave/cmd"

func main() {
	cmd.Execute()
}
