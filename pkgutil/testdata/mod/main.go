package main

import "example.com/shapes/shapes"

func main() {
	println(shapes.Square(3).Area())
}
