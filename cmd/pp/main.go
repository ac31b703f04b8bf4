package main

import "github.com/flowsyncsolutions/pixelpress/cmd/pp/root"

func main() {
	root.Execute()
}
