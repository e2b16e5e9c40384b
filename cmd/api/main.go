package main

import (
	"github.com/thereayou/contacts-api/internal/server"
)

func main() {
	server.NewServer().Run()
}
