package main

import "event-media-backend/cmd"

func main() {
	cmd.Run()
}
