package main

import "github.com/osse101/HealthQuest_Go/cmd/hqctl/root"

func main() {
	root.Execute()
}
