package main

import "inventory-dashboard/cmd"

func main() {
	cmd.Execute()
}
