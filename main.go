package main

import "joblex.dev/joblex/cmd"

func main() {
	cmd.Execute()
}
