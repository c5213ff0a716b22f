package main

import "github.com/HMetcalfeW/terracarta/cmd"

func main() {
	cmd.Execute()
}
