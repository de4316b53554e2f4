package main

import "github.com/mouse-blink/inputfix/cmd"

func main() {
	cmd.Execute()
}
