package main

import "github.com/crgrady/tablescope/cmd"

func main() {
	cmd.Execute()
}
