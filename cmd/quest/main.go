// Command quest is the Eternal Quest goal tracker.
package main

import "github.com/papapumpkin/quest/cmd"

func main() {
	cmd.Execute()
}
