package main

import (
	_ "time/tzdata" // timezones from the config must resolve on minimal images

	tableview "github.com/datazip-inc/olake-tableview"
)

func main() {
	tableview.Run()
}
