/* Record the default audio device to an aptX / aptX HD stream */
package main

import (
	aptx "github.com/go-aptx/go-aptx/src"
)

func main() {
	aptx.RecMain()
}
