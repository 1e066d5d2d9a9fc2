package main

import "budgetbook/cmd"

func main() {
	cmd.Execute()
}
