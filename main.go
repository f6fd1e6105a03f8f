package main

import "taskhive.com/taskhive/cmd"

func main() {
	cmd.Execute()
}
