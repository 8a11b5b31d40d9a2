package main

import "overcooked-menu/menu-svc/cmd"

func main() {
	cmd.Execute()
}
