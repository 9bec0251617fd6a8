package main

import "rozkladctl/cmd"

func main() {
	cmd.Execute()
}
