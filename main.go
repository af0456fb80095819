package main

import "github.com/naka-gawa/readme-card/cmd"

func main() {
	cmd.Execute()
}
