package main

import "github.com/theirongolddev/bakecost/cmd"

func main() {
	cmd.Execute()
}
