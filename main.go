package main

import "golang-netconfig/cmd"

func main() {
	cmd.Execute()
}
