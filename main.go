package main

import "github.com/trentonstrong/spectrograph/cmd"

func main() {
	cmd.Execute()
}
