/* Decode an aptX / aptX HD stream to the default audio device */
package main

import (
	aptx "github.com/go-aptx/go-aptx/src"
)

func main() {
	aptx.PlayMain()
}
