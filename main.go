package main

import "github.com/quickshare/rooms/cmd/server"

func main() {
	s := server.NewServer()
	s.Run()
}
