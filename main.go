package main

import "github.com/geezee/YoutubeJS/cmd"

func main() {
	cmd.Execute()
}
