package main

import "tasktracker.com/tasktracker/cmd"

func main() {
	cmd.Execute()
}
