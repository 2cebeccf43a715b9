package main

import "github.com/thereayou/roomhub/cmd/server"

func main() {
	server.NewServer().Run()
}
