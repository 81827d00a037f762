/* aptX / aptX HD encoder command */
package main

import (
	aptx "github.com/go-aptx/go-aptx/src"
)

func main() {
	aptx.EncMain()
}
