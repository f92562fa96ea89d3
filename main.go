package main

import "github.com/vietdv277/chimectl/cmd"

func main() {
	cmd.Execute()
}
