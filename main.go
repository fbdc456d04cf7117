package main

import "nathanbeddoewebdev/hexpair/cmd"

func main() {
	cmd.Execute()
}
