package main

import "github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd"

func main() {
	cmd.Execute(cmd.RootCmd())
}
