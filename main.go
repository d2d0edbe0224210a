package main

import "veriface.io/infrastructure"

func main() {
	infrastructure.StartServer()
}
