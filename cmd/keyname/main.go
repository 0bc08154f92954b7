package main

import (
	"fmt"
	"time"

	"github.com/xyproto/hotkey"
)

func main() {
	escCount := 0
	tty, err := hotkey.NewTTY()
	if err != nil {
		panic(err)
	}
	defer tty.Close()
	tty.SetTimeout(10 * time.Millisecond)
	for {
		ev, ok, err := tty.ReadEvent()
		if err != nil {
			panic(err)
		}
		if ok && ev.Down {
			if name, err := hotkey.Encode(ev); err == nil {
				fmt.Printf("%s\r\n", name)
			} else {
				fmt.Printf("%v\r\n", err)
			}
		}
		if ok && ev.Down && ev.KeyCode == hotkey.VKEscape {
			if escCount == 0 {
				fmt.Print("Press ESC again to exit\r\n")
			} else {
				fmt.Print("bye!\r\n")
			}
			escCount++
		}
		if escCount > 1 {
			break
		}
	}
}
