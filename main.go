// Command pastewiki converts pasted rich-text HTML into Jira wiki markup.
package main

import "github.com/gaurav-prasanna/pastewiki/cmd"

func main() {
	cmd.Execute()
}
